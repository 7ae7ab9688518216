package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/sobel-edge-mcp/internal/imaging"
	"github.com/ironsheep/sobel-edge-mcp/internal/sobel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_sobel").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/sobel function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Gradient Operations
	case "image_sobel":
		return s.handleImageSobel(args)
	case "image_sobel_region":
		return s.handleImageSobelRegion(args)
	case "image_sobel_direction":
		return s.handleImageSobelDirection(args)
	case "image_gradient_stats":
		return s.handleImageGradientStats(args)

	// Raw Buffers
	case "sobel_apply_raw":
		return s.handleSobelApplyRaw(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Gradient Operation Handlers ===

type imageSobelArgs struct {
	Path          string `json:"path"`
	Channel       int    `json:"channel"`
	IncludeThetas bool   `json:"include_thetas"`
}

func (s *Server) edgeOptions(channel int, thetas bool) imaging.EdgeOptions {
	if channel == 0 {
		channel = 1
	}
	return imaging.EdgeOptions{
		Channels:      channel,
		IncludeThetas: thetas,
		Service:       s.sobelService(nil),
	}
}

func (s *Server) handleImageSobel(args json.RawMessage) (interface{}, error) {
	var a imageSobelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeDetect(img, s.edgeOptions(a.Channel, a.IncludeThetas))
}

type imageSobelRegionArgs struct {
	Path          string  `json:"path"`
	Region        string  `json:"region"`
	X1            int     `json:"x1"`
	Y1            int     `json:"y1"`
	X2            int     `json:"x2"`
	Y2            int     `json:"y2"`
	Scale         float64 `json:"scale"`
	Channel       int     `json:"channel"`
	IncludeThetas bool    `json:"include_thetas"`
}

func (s *Server) handleImageSobelRegion(args json.RawMessage) (interface{}, error) {
	var a imageSobelRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region image.Image
	if a.Region != "" {
		region, err = imaging.CropQuadrant(img, a.Region, a.Scale)
	} else {
		region, err = imaging.CropRegion(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
	}
	if err != nil {
		return nil, err
	}
	return imaging.EdgeDetect(region, s.edgeOptions(a.Channel, a.IncludeThetas))
}

func (s *Server) handleImageSobelDirection(args json.RawMessage) (interface{}, error) {
	var a imageSobelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DirectionDetect(img, s.edgeOptions(a.Channel, false))
}

type imageGradientStatsArgs struct {
	Path      string `json:"path"`
	Channel   int    `json:"channel"`
	Threshold *int   `json:"threshold"`
}

func (s *Server) handleImageGradientStats(args json.RawMessage) (interface{}, error) {
	var a imageGradientStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := 128
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("threshold %d outside 0-255", threshold)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, raw, err := imaging.Gradient(img, s.edgeOptions(a.Channel, false))
	if err != nil {
		return nil, err
	}
	return imaging.GradientStats(res, raw.Width, raw.Height, threshold)
}

// === Raw Buffer Handlers ===

// sobelApplyRawArgs mirrors the engine's buffer contract. Data is an int
// array because encoding/json treats []uint8 as base64; a missing data field
// decodes to nil, which the engine reports as absent. A missing channel
// means 1.
type sobelApplyRawArgs struct {
	Data    []int `json:"data"`
	Width   int   `json:"width"`
	Height  int   `json:"height"`
	Channel *int  `json:"channel"`
}

// SobelApplyRawResult is the raw buffer output of sobel_apply_raw.
type SobelApplyRawResult struct {
	// ImageData holds four samples (R, G, B, A) per pixel.
	ImageData []int                 `json:"image_data"`
	Thetas    []sobel.ThetaMetadata `json:"thetas"`

	// Warning carries the diagnostic when the input was rejected.
	Warning string `json:"warning,omitempty"`
}

func (s *Server) handleSobelApplyRaw(args json.RawMessage) (interface{}, error) {
	var a sobelApplyRawArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var data []uint8
	if a.Data != nil {
		data = make([]uint8, len(a.Data))
		for i, v := range a.Data {
			data[i] = saturate(v)
		}
	}

	channel := 1
	if a.Channel != nil {
		channel = *a.Channel
	}

	out := &SobelApplyRawResult{}
	res := s.sobelService(func(msg string) { out.Warning = msg }).Apply(data, a.Width, a.Height, channel)

	out.ImageData = make([]int, len(res.ImageData))
	for i, v := range res.ImageData {
		out.ImageData[i] = int(v)
	}
	out.Thetas = res.Thetas
	return out, nil
}

// saturate clamps v into 0-255 the way an 8-bit clamped buffer stores it.
func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
