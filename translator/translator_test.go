package translator

import (
	"testing"

	gst "github.com/richinsley/goshadertranslator"
)

func TestMappedNames(t *testing.T) {
	vars := map[string]gst.ShaderVariable{
		"time":       {MappedName: "_utime"},
		"resolution": {MappedName: "_uresolution"},
	}
	got := mappedNames(vars)
	if len(got) != 2 || got["time"] != "_utime" || got["resolution"] != "_uresolution" {
		t.Errorf("mappedNames() = %v", got)
	}
}

func TestResultMappedName(t *testing.T) {
	r := &Result{Names: map[string]string{"time": "_utime", "blank": ""}}
	tests := map[string]string{
		"time":  "_utime",
		"mouse": "mouse",
		"blank": "blank",
	}
	for in, want := range tests {
		if got := r.MappedName(in); got != want {
			t.Errorf("MappedName(%q) = %q, want %q", in, got, want)
		}
	}

	var none *Result
	if got := none.MappedName("tex"); got != "tex" {
		t.Errorf("nil Result MappedName = %q, want tex", got)
	}
}

func TestResultVaryingName(t *testing.T) {
	r := &Result{Names: map[string]string{"uv": "_uuv_mapped"}}
	if got := r.VaryingName("uv"); got != "_uuv_mapped" {
		t.Errorf("VaryingName(uv) = %q", got)
	}
	if got := (&Result{}).VaryingName("uv"); got != "_uuv" {
		t.Errorf("VaryingName fallback = %q, want _uuv", got)
	}
}
