package mcpserver

// Arguments access helpers over the direct-format map the MCP framework
// hands to a tool handler (spec §4.7: "arguments sit at the top level of
// the tool-call arguments object; no nested params wrapper").

func argString(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func argStringDefault(args map[string]any, key, def string) string {
	if s, ok := argString(args, key); ok && s != "" {
		return s
	}
	return def
}

func argBoolDefault(args map[string]any, key string, def bool) bool {
	if v, ok := args[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// argNumber extracts a float64, the type every JSON number decodes to in a
// map[string]any.
func argNumber(args map[string]any, key string) (float64, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func argIntDefault(args map[string]any, key string, def int) int {
	if f, ok := argNumber(args, key); ok {
		return int(f)
	}
	return def
}

func argIntPtr(args map[string]any, key string) *int {
	f, ok := argNumber(args, key)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

func argBoolPtr(args map[string]any, key string) *bool {
	v, ok := args[key]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

func argStringSlice(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argMap(args map[string]any, key string) map[string]any {
	v, ok := args[key]
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}
