package main

import (
	"testing"

	"pixelbanner/internal/services"
)

func TestSelectTargets(t *testing.T) {
	all := []services.Target{{Name: "preview"}, {Name: "readme-banner"}, {Name: "afdian-cover"}}

	got, err := selectTargets(all, nil)
	if err != nil || len(got) != 3 {
		t.Fatalf("no names: %v, %v", got, err)
	}

	got, err = selectTargets(all, []string{"afdian-cover", "preview"})
	if err != nil {
		t.Fatalf("selectTargets: %v", err)
	}
	if len(got) != 2 || got[0].Name != "afdian-cover" || got[1].Name != "preview" {
		t.Errorf("selected = %+v", got)
	}

	if _, err := selectTargets(all, []string{"poster"}); err == nil {
		t.Error("expected error for unknown target")
	}
}
