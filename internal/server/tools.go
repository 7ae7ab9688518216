package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that reads an image file.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// channelProperty is the schema for the raw buffer layout used by the Sobel pass.
func channelProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"enum":        []int{1, 2, 3, 4},
		"description": "Samples per pixel in the grayscale buffer handed to the Sobel pass (1=gray, 2=gray+alpha, 3=gray x3, 4=gray x3+alpha). Only the first sample is read. Default 1",
		"default":     1,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and whether it is already grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Gradient Operations
		{
			Name:        "image_sobel",
			Description: "Apply the Sobel operator to an image. Returns the gradient magnitude as a grayscale PNG (base64, RGBA, magnitudes clamped to 255) and optionally the gradient direction (theta, radians) of every pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"channel": channelProperty(),
					"include_thetas": map[string]interface{}{
						"type":        "boolean",
						"description": "Include per-pixel {x, y, theta} records in row-major order. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sobel_region",
			Description: "Apply the Sobel operator to a region of an image, given either by coordinates or by name (top-left, top-right, bottom-left, bottom-right, top-half, bottom-half, left-half, right-half, center).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Named region. When set, x1/y1/x2/y2 are ignored",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied before the Sobel pass. Default 1.0",
						"default":     1.0,
					},
					"channel": channelProperty(),
					"include_thetas": map[string]interface{}{
						"type":        "boolean",
						"description": "Include per-pixel {x, y, theta} records. Coordinates are relative to the region. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sobel_direction",
			Description: "Render gradient direction as color: hue encodes theta, brightness encodes magnitude. Useful for seeing edge orientation at a glance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"channel": channelProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_gradient_stats",
			Description: "Summarize the Sobel gradient field: mean, standard deviation, median and maximum magnitude, the fraction of pixels at or above a threshold, and the dominant edge direction.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"channel": channelProperty(),
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Edge threshold (0-255). Default 128",
						"default":     128,
					},
				},
				"required": []string{"path"},
			},
		},

		// Raw Buffers
		{
			Name:        "sobel_apply_raw",
			Description: "Apply the Sobel operator to a raw grayscale pixel buffer. Returns RGBA image data and per-pixel {x, y, theta}. Invalid input returns empty arrays and a warning instead of an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
						"description": "Row-major interleaved samples, width*height*channel long",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"channel": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{1, 2, 3, 4},
						"description": "Samples per pixel. Only the first is read. Default 1",
						"default":     1,
					},
				},
				"required": []string{"data", "width", "height"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
