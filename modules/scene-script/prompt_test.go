package scenescript

import (
	"strings"
	"testing"
)

func TestScriptTrailerCarriesSceneCount(t *testing.T) {
	trailer := scriptTrailer(6, "")
	if !strings.Contains(trailer, "at most 6 scenes") {
		t.Errorf("trailer missing scene count: %s", trailer)
	}
}

func TestScriptTrailerIncludesBrief(t *testing.T) {
	trailer := scriptTrailer(4, "handmade ceramic mugs for morning coffee")
	if !strings.Contains(trailer, "[SUBJECT]") {
		t.Error("trailer missing subject section")
	}
	if !strings.Contains(trailer, "handmade ceramic mugs") {
		t.Error("trailer missing the brief text")
	}

	// 브리프가 없으면 SUBJECT 섹션도 없음
	trailer = scriptTrailer(4, "")
	if strings.Contains(trailer, "[SUBJECT]") {
		t.Error("empty brief must not emit a subject section")
	}
}
