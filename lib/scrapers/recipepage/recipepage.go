package recipepage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"aleppo/lib/htmlutil"
	"aleppo/lib/recipe"
	"aleppo/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/recipepage")

// ErrBlocked is reported when the site actively refused the request,
// usually a bot-protection interstitial. Callers surface this to the
// user so they can fall back to the bookmarklet flow.
const ErrBlocked = "blocked"

const ErrFetchFailed = "Failed to fetch URL"

// ErrNoStructuredData means the page loaded but no usable recipe
// structured data was found on it.
const ErrNoStructuredData = "Could not parse recipe structured data. Please fill in manually."

type Client struct {
	Http *resty.Client
}

func NewClient() (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	client.SetHeader("accept-language", "en-US,en;q=0.9")
	client.SetHeader("sec-fetch-dest", "document")
	client.SetHeader("sec-fetch-mode", "navigate")
	client.SetHeader("sec-fetch-site", "none")
	client.SetTimeout(time.Second * 15)

	telemetry.InstrumentResty(client, "scrapers/recipepage/http")

	return &Client{Http: client}, nil
}

// Result is the outcome of one scrape attempt. Err uses sentinel
// strings rather than error values because it is persisted verbatim in
// import audit records and shown to users.
type Result struct {
	Recipe     *recipe.ScrapedRecipe
	RawPayload map[string]any
	Err        string
}

func (c *Client) ScrapeURL(ctx context.Context, pageUrl string) Result {
	ctx, span := tracer.Start(ctx, "client:ScrapeURL")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return Result{Err: ErrFetchFailed}
	}

	if res.IsError() {
		payload := map[string]any{
			"url":        pageUrl,
			"statusCode": res.StatusCode(),
		}
		server := res.Header().Get("Server")
		if strings.Contains(strings.ToLower(server), "cloudflare") || res.Header().Get("Cf-Ray") != "" {
			payload["cloudflare"] = true
		}
		if res.StatusCode() == 403 {
			span.SetStatus(codes.Error, "request blocked by site")
			return Result{RawPayload: payload, Err: ErrBlocked}
		}
		span.SetStatus(codes.Error, "unexpected status code")
		return Result{
			RawPayload: payload,
			Err:        fmt.Sprintf("HTTP %d: %s", res.StatusCode(), http.StatusText(res.StatusCode())),
		}
	}

	return c.ScrapeHTML(ctx, res.String(), pageUrl)
}

func (c *Client) ScrapeHTML(ctx context.Context, html, pageUrl string) Result {
	ctx, span := tracer.Start(ctx, "client:ScrapeHTML")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return Result{Err: ErrNoStructuredData}
	}

	var blocks []any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var block any
		// a single malformed block should not sink the whole page,
		// sites routinely ship broken ad-injected json-ld next to
		// perfectly good recipe data
		err := json.Unmarshal([]byte(s.Text()), &block)
		if err != nil {
			span.RecordError(err)
			return
		}
		blocks = append(blocks, block)
	})

	meta := recipe.Meta{
		PageTitle: htmlutil.PageTitle(doc),
		OgImage:   htmlutil.MetaProperty(doc, "og:image"),
		SiteName:  htmlutil.MetaProperty(doc, "og:site_name"),
	}

	payload := map[string]any{
		"url":    pageUrl,
		"jsonld": blocks,
		"meta":   meta,
	}

	scraped, ok := recipe.ExtractFromJSONLD(blocks, meta)
	if !ok {
		span.SetStatus(codes.Error, "no recipe structured data found")
		// partial success: og metadata still gives the user a head
		// start on a manual entry
		partial := &recipe.ScrapedRecipe{
			Title:        meta.PageTitle,
			Description:  htmlutil.MetaProperty(doc, "og:description"),
			Ingredients:  []recipe.Ingredient{},
			Instructions: []recipe.InstructionStep{},
			ImageURL:     meta.OgImage,
			SourceName:   meta.SiteName,
		}
		return Result{
			Recipe:     partial,
			RawPayload: payload,
			Err:        ErrNoStructuredData,
		}
	}

	return Result{Recipe: scraped, RawPayload: payload}
}
