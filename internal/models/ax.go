package models

import "github.com/yourusername/mado-cli/internal/types"

// Attribute value types on the wire
const (
	ValuePoint   = "point"
	ValueSize    = "size"
	ValueString  = "string"
	ValueElement = "element"
)

// AttributeValue is the tagged accessibility value exchanged with the host.
// Exactly one payload field is set, matching Type.
type AttributeValue struct {
	Type    string       `json:"type"`
	Point   *types.Point `json:"point,omitempty"`
	Size    *types.Size  `json:"size,omitempty"`
	String  *string      `json:"string,omitempty"`
	Element string       `json:"element,omitempty"`
}

// Application is a running application as reported by the host
type Application struct {
	PID           int    `json:"pid"`
	LocalizedName string `json:"localizedName"`
	Element       string `json:"element"`
}

// GetAttributeResult is the result of ax.getAttribute
type GetAttributeResult struct {
	Value AttributeValue `json:"value"`
}

// ServerInfo is the result of getServerInfo
type ServerInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Platform        string `json:"platform"`
	AXTrusted       bool   `json:"axTrusted"`
	ProtocolVersion int    `json:"protocolVersion"`
}
