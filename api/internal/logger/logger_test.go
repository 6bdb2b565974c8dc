package logger

import (
	"testing"
)

func TestAnyToStr(t *testing.T) {

	tests := []struct {
		T    any
		TStr string
	}{
		{10, "10"},
		{-10, "-10"},
		{true, "true"},
		{false, "false"},
		{"test", "test"},
		{"", ""},
		{nil, "<nil>"},
		{struct{}{}, "{}"},

		{struct {
			Z string
			F int
		}{"test", 10}, "{test 10}"},

		{[]int{1, 2, 3}, "[1 2 3]"},
	}

	for _, x := range tests {
		res := AnyToStr(x.T)
		if x.TStr != res {
			t.Log(x.T)
			t.Fatalf("failed: %s != %s", x.TStr, res)
		}

	}

}

func TestFormatLog(t *testing.T) {
	l := Logger{}

	_, err := l.formatLog(LL_INFO, "test", 0, "file.go", 1, "key", "value")
	if err != nil {
		t.Fatal(err)
	}

	_, err = l.formatLog(LL_INFO, "test", 0, "file.go", 1, 10, "value")
	if err == nil {
		t.Fatal("expected non-string key error")
	}

	_, err = l.formatLog(LL_INFO, "test", 0, "file.go", 1, "key")
	if err == nil {
		t.Fatal("expected odd args error")
	}
}

func TestGenErrorId(t *testing.T) {
	id := GenErrorId()
	if id == "" || id == NA {
		t.Fatalf("bad error id: %s", id)
	}
}
