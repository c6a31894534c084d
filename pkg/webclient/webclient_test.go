package webclient

import "testing"

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain title",
			body: "<html><head><title>Acme Grant</title></head><body></body></html>",
			want: "Acme Grant",
		},
		{
			name: "title with surrounding whitespace and newlines",
			body: "<html><head><title>\n  Acme\r\n Grant  </title></head></html>",
			want: "Acme Grant",
		},
		{
			name: "no title",
			body: "<html><body><h1>hi</h1></body></html>",
			want: "",
		},
		{
			name: "not html at all",
			body: "Category,Name\nFunding,Acme Grant",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageTitle(tt.body); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
