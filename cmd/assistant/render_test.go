package main

import "testing"

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		color bool
		want  string
	}{
		{name: "plain", in: "no emphasis here", color: true, want: "no emphasis here"},
		{name: "pair", in: "**Captain Analysis**", color: true, want: ansiBold + "Captain Analysis" + ansiReset},
		{name: "inline", in: "pick **Kohli** now", color: true, want: "pick " + ansiBold + "Kohli" + ansiReset + " now"},
		{name: "no color strips delimiters", in: "**Form Score:** 82/100", color: false, want: "Form Score: 82/100"},
		{name: "empty pair", in: "a****b", color: true, want: "ab"},
		{name: "unpaired", in: "x **y", color: true, want: "x " + ansiBold + "y" + ansiReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderEmphasis(tt.in, tt.color); got != tt.want {
				t.Fatalf("renderEmphasis(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}
