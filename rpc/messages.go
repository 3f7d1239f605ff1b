package rpc

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

type AnalyzeRequest struct {
	Width, Height int
	Moves         []int
	Depth         int
	Algorithm     string
	ComputerFirst bool
}

type AnalyzeResponse struct {
	Value     float64
	Column    int
	Visited   uint64
	Evaluated uint64
}

func (r *AnalyzeRequest) Struct() (*structpb.Struct, error) {
	moves := make([]interface{}, len(r.Moves))
	for i, m := range r.Moves {
		moves[i] = m
	}
	return structpb.NewStruct(map[string]interface{}{
		"width":          r.Width,
		"height":         r.Height,
		"moves":          moves,
		"depth":          r.Depth,
		"algorithm":      r.Algorithm,
		"computer_first": r.ComputerFirst,
	})
}

// DecodeAnalyzeRequest reads a request. Missing fields take the
// defaults of a 7x6 alpha-beta search from the empty board with the
// computer moving first; depth is required.
func DecodeAnalyzeRequest(s *structpb.Struct) (*AnalyzeRequest, error) {
	r := &AnalyzeRequest{
		Width:         7,
		Height:        6,
		Algorithm:     "alphabeta",
		ComputerFirst: true,
	}
	var err error
	if r.Width, err = intField(s, "width", r.Width); err != nil {
		return nil, err
	}
	if r.Height, err = intField(s, "height", r.Height); err != nil {
		return nil, err
	}
	if r.Depth, err = intField(s, "depth", -1); err != nil {
		return nil, err
	}
	if r.Depth < 0 {
		return nil, fmt.Errorf("missing field %q", "depth")
	}
	if v, ok := s.GetFields()["algorithm"]; ok {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("field %q: want a string", "algorithm")
		}
		r.Algorithm = sv.StringValue
	}
	if v, ok := s.GetFields()["computer_first"]; ok {
		bv, ok := v.GetKind().(*structpb.Value_BoolValue)
		if !ok {
			return nil, fmt.Errorf("field %q: want a bool", "computer_first")
		}
		r.ComputerFirst = bv.BoolValue
	}
	if v, ok := s.GetFields()["moves"]; ok {
		lv, ok := v.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return nil, fmt.Errorf("field %q: want a list", "moves")
		}
		for i, mv := range lv.ListValue.GetValues() {
			n, err := asInt(mv)
			if err != nil {
				return nil, fmt.Errorf("moves[%d]: %w", i, err)
			}
			r.Moves = append(r.Moves, n)
		}
	}
	return r, nil
}

func (r *AnalyzeResponse) Struct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"value":     r.Value,
		"column":    r.Column,
		"visited":   r.Visited,
		"evaluated": r.Evaluated,
	})
}

func DecodeAnalyzeResponse(s *structpb.Struct) (*AnalyzeResponse, error) {
	f := s.GetFields()
	for _, k := range []string{"value", "column", "visited", "evaluated"} {
		if _, ok := f[k].GetKind().(*structpb.Value_NumberValue); !ok {
			return nil, fmt.Errorf("response field %q: want a number", k)
		}
	}
	return &AnalyzeResponse{
		Value:     f["value"].GetNumberValue(),
		Column:    int(f["column"].GetNumberValue()),
		Visited:   uint64(f["visited"].GetNumberValue()),
		Evaluated: uint64(f["evaluated"].GetNumberValue()),
	}, nil
}

func intField(s *structpb.Struct, name string, def int) (int, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return def, nil
	}
	n, err := asInt(v)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}
	return n, nil
}

func asInt(v *structpb.Value) (int, error) {
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("want a number")
	}
	n := nv.NumberValue
	if n != math.Trunc(n) || math.Abs(n) > 1<<31 {
		return 0, fmt.Errorf("want an integer, got %g", n)
	}
	return int(n), nil
}
