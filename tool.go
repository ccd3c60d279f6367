package analyzer

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Tool-call surface for embedding programs
// ============================================================

// ToolRequest is a single tool invocation. Params carry expression strings;
// the pipeline owns the parser, so callers never ship tree objects.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result     interface{} `json:"result,omitempty"`
	Tree       string      `json:"tree,omitempty"`
	Normalized string      `json:"normalized,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// HandleToolCall dispatches a tool request against the pipeline. Lexer and
// parser failures come back in the Error field, never as a Go error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getPair := func() (Expr, Expr, error) {
		sa, err := getString("a")
		if err != nil {
			return nil, nil, err
		}
		sb, err := getString("b")
		if err != nil {
			return nil, nil, err
		}
		a, err := Parse(sa)
		if err != nil {
			return nil, nil, err
		}
		b, err := Parse(sb)
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}

	switch req.Tool {
	case "tokenize":
		src, err := getString("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		tokens, err := Tokenize(src)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		listing := make([]string, len(tokens))
		for i, tok := range tokens {
			listing[i] = tok.String()
		}
		return ToolResponse{Result: listing}

	case "parse":
		src, err := getString("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		expr, err := Parse(src)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: expr.String(), Tree: Dump(expr)}

	case "normalize":
		src, err := getString("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		expr, err := Parse(src)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: expr.String(), Normalized: Normalize(expr).String()}

	case "equivalent":
		a, b, err := getPair()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: AreEquivalent(a, b)}

	case "equivalent_verbose":
		a, b, err := getPair()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		ok, method, details := CheckEquivalence(a, b)
		return ToolResponse{Result: map[string]interface{}{
			"equivalent": ok,
			"method":     string(method),
			"details":    details,
		}}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ToolSpec describes the available tools for endpoint discovery.
func ToolSpec() string {
	ts := func(name, desc string, params []string) map[string]interface{} {
		props := map[string]interface{}{}
		for _, p := range params {
			props[p] = map[string]string{"type": "string"}
		}
		return map[string]interface{}{
			"name":        name,
			"description": desc,
			"parameters": map[string]interface{}{
				"type":       "object",
				"properties": props,
				"required":   params,
			},
		}
	}
	tools := []map[string]interface{}{
		ts("tokenize", "Tokenize an expression, including implicit multiplication", []string{"expr"}),
		ts("parse", "Parse an expression and return its canonical form and tree dump", []string{"expr"}),
		ts("normalize", "Normalize an expression to canonical polynomial form", []string{"expr"}),
		ts("equivalent", "Check whether two expressions are mathematically equivalent", []string{"a", "b"}),
		ts("equivalent_verbose", "Check equivalence and report the deciding strategy", []string{"a", "b"}),
	}
	out, _ := json.MarshalIndent(map[string]interface{}{"tools": tools}, "", "  ")
	return string(out)
}
