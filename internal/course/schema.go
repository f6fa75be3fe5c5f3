package course

// courseSchema is the strict shape every course tree must satisfy before
// it is admitted to the snapshot cache. The generator's output is
// loosely typed on the wire; validating here lets every downstream
// component assume a well-formed tree.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":         map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"chapters": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"topics": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title":   map[string]any{"type": "string"},
								"content": map[string]any{"type": "string"},
								"quiz": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"questions": map[string]any{
											"type": "array",
											"items": map[string]any{
												"type": "object",
												"properties": map[string]any{
													"text": map[string]any{"type": "string"},
													"options": map[string]any{
														"type":     "array",
														"items":    map[string]any{"type": "string"},
														"minItems": 2,
													},
													"correctOptionIndex": map[string]any{
														"type":    "integer",
														"minimum": 0,
													},
												},
												"required": []any{"text", "options", "correctOptionIndex"},
											},
										},
									},
									"required": []any{"questions"},
								},
							},
							"required": []any{"title", "quiz"},
						},
					},
				},
				"required": []any{"title", "topics"},
			},
		},
	},
	"required": []any{"_id", "chapters"},
}
