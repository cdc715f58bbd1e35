package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/podlink/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("Alamofire")
	b := domain.NewInternedString("Alamofire")

	if a != b {
		t.Errorf("Expected interned values of identical strings to be equal")
	}
	if a.String() != "Alamofire" {
		t.Errorf("Expected String() to return %q, got %q", "Alamofire", a.String())
	}
	if a.Compare(b) != 0 {
		t.Errorf("Expected Compare of equal values to be 0")
	}
	if a.Compare(domain.NewInternedString("Bolts")) >= 0 {
		t.Errorf("Expected Alamofire to sort before Bolts")
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected zero value to stringify as empty, got %q", zero.String())
	}
	if domain.NewInternedString("").IsZero() {
		t.Error("Expected an interned empty string not to be zero")
	}
}

func TestInternedString_JSONInStruct(t *testing.T) {
	type state struct {
		Pod domain.InternedString `json:"pod"`
	}

	data, err := json.Marshal(state{Pod: domain.NewInternedString("Firebase/Core")})
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"pod":"Firebase/Core"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var decoded state
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.Pod.String() != "Firebase/Core" {
		t.Errorf("Expected decoded pod %q, got %q", "Firebase/Core", decoded.Pod.String())
	}
}
