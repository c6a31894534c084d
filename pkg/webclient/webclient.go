// Package webclient wraps retryablehttp for every upstream fetch the
// directory performs: the CSV blob host, the record-database API and the
// link checker.
package webclient

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"

type Header struct {
	Name  string
	Value string
}

type Request struct {
	Method  string
	URL     string
	Body    string
	Headers []Header
}

type Response struct {
	StatusCode int
	BodyString string
}

// New builds a retrying HTTP client with the library's chatter silenced.
// proxy may be empty.
func New(proxy string) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = log.New(io.Discard, "", 0)
	client.RetryMax = 3

	if proxy != "" {
		if proxyURL, err := url.Parse(proxy); err == nil {
			client.HTTPClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}
	return client
}

// Send performs one request and drains the body. Network-level failures are
// returned as-is; non-2xx statuses are left to the caller to interpret.
func Send(ctx context.Context, client *retryablehttp.Client, wReq *Request) (*Response, error) {
	var body io.Reader
	if wReq.Body != "" {
		body = strings.NewReader(wReq.Body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, wReq.Method, wReq.URL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en")
	for _, h := range wReq.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		BodyString: string(bodyBytes),
	}, nil
}

// PageTitle extracts the <title> text from an HTML document, or "" when the
// document has none.
func PageTitle(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	title := doc.Find("title").First().Text()
	title = strings.ReplaceAll(title, "\n", "")
	title = strings.ReplaceAll(title, "\r", "")
	return strings.TrimSpace(title)
}
