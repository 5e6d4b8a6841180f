package gemini

import "testing"

func TestBuildPartsPreservesOrderAndRoles(t *testing.T) {
	refs := []ImageReference{
		{Data: []byte("AAA"), MIMEType: "image/png", Role: "product"},
		{Data: []byte("BBB"), MIMEType: "image/jpeg"},
	}

	parts := BuildParts(refs)

	// [text("product"), image(A), image(B)]
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}
	if parts[0].Text != "[Reference: product]" {
		t.Errorf("parts[0].Text = %q, want role annotation", parts[0].Text)
	}
	if parts[1].InlineData == nil || string(parts[1].InlineData.Data) != "AAA" {
		t.Error("parts[1] must be image A")
	}
	if parts[1].InlineData.MIMEType != "image/png" {
		t.Errorf("parts[1] mime = %q, want image/png", parts[1].InlineData.MIMEType)
	}
	if parts[2].InlineData == nil || string(parts[2].InlineData.Data) != "BBB" {
		t.Error("parts[2] must be image B (no preceding role label)")
	}
}

func TestBuildPartsEmptyInput(t *testing.T) {
	if parts := BuildParts(nil); len(parts) != 0 {
		t.Errorf("BuildParts(nil) returned %d parts, want 0", len(parts))
	}
	if parts := BuildParts([]ImageReference{}); len(parts) != 0 {
		t.Errorf("BuildParts(empty) returned %d parts, want 0", len(parts))
	}
}

func TestBuildPartsAllRolesLabeled(t *testing.T) {
	refs := []ImageReference{
		{Data: []byte("a"), MIMEType: "image/png", Role: "character"},
		{Data: []byte("b"), MIMEType: "image/png", Role: "product"},
		{Data: []byte("c"), MIMEType: "image/png", Role: "background"},
	}

	parts := BuildParts(refs)
	if len(parts) != 6 {
		t.Fatalf("got %d parts, want 6 (label+image per reference)", len(parts))
	}
	wantLabels := []string{"[Reference: character]", "[Reference: product]", "[Reference: background]"}
	for i, want := range wantLabels {
		if parts[i*2].Text != want {
			t.Errorf("parts[%d].Text = %q, want %q", i*2, parts[i*2].Text, want)
		}
		if parts[i*2+1].InlineData == nil {
			t.Errorf("parts[%d] must be the image following its label", i*2+1)
		}
	}
}
