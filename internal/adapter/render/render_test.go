package render

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banner-rotator/internal/core/domain"
)

type listerFunc func(ctx context.Context, location string) ([]domain.Banner, error)

func (f listerFunc) ListBanners(ctx context.Context, location string) ([]domain.Banner, error) {
	return f(ctx, location)
}

type staticNonce string

func (n staticNonce) Issue(string, string) (string, error) { return string(n), nil }

func newTestRenderer() *Renderer {
	return NewRenderer(Options{
		SiteURL:          url.URL{Scheme: "https", Host: "www.example.org"},
		RotationInterval: 5 * time.Second,
		ClickEndpoint:    "/api/v1/banners/click",
	})
}

func testBanner(id int64, location string) domain.Banner {
	return domain.Banner{
		ID:          id,
		Title:       "Sponsor",
		URL:         "https://sponsor.test/landing",
		ImageURL:    "https://cdn.test/banner.png",
		Location:    location,
		Description: "<p>Great <strong>deals</strong></p>",
		Status:      domain.StatusPublish,
		Active:      true,
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Home Page - Standard Ad":      "home-page-standard-ad",
		"Home Page - Platinum Sponsor": "home-page-platinum-sponsor",
		"Café Crème":                   "cafe-creme",
		"  Interior  Page ":            "interior-page",
		"a & b":                        "a-b",
		"snake_case.v2":                "snake_case-v2",
		"Søren Ærø":                    "soren-aero",
		"Straße":                       "strasse",
		"Œuvre Łódź":                   "oeuvre-lodz",
		"Þórshöfn":                     "thorshofn",
		"":                             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestBannerStandardLayout(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Banner(testBanner(7, "Interior Page"))
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<div class="random-banner random-banner-interior-page" data-banner-id="7">`)
	assert.Contains(t, out, `target="_blank" rel="noopener"`)
	assert.Contains(t, out, `class="banner-link" data-banner-id="7"`)
	assert.Contains(t, out, `<div class="row align-middle stack-row">`)
	assert.Contains(t, out, `<div class="col large-9 medium-9 small-12"><div class="col-inner">`)
	assert.Contains(t, out, `<h3>Sponsor</h3>`)
	assert.Contains(t, out, `<div class="banner-description"><p>Great <strong>deals</strong></p></div>`)
	assert.Contains(t, out, `<img src="https://cdn.test/banner.png" alt="Sponsor">`)
}

func TestBannerInternalLink(t *testing.T) {
	r := newTestRenderer()
	b := testBanner(1, "Interior Page")
	b.URL = "https://www.example.org/events"
	b.Title = `<script>alert(1)</script>`

	html, err := r.Banner(b)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, `target="_blank"`)
	assert.NotContains(t, out, `<script>alert(1)</script>`)
	assert.Contains(t, out, `&lt;script&gt;`)
}

func TestBannerLinkTarget(t *testing.T) {
	r := newTestRenderer()
	cases := map[string]bool{
		"https://www.example.org/events": false,
		"http://www.example.org":         false,
		"https://sponsor.test/deal":      true,
		"/events/spring":                 true,
		"events/spring":                  true,
		"":                               true,
		"mailto:ads@example.org":         true,
	}
	for link, external := range cases {
		b := testBanner(1, "Interior Page")
		b.URL = link
		html, err := r.Banner(b)
		require.NoError(t, err)
		if external {
			assert.Contains(t, string(html), `target="_blank" rel="noopener"`, link)
		} else {
			assert.NotContains(t, string(html), `target="_blank"`, link)
		}
	}
}

func TestBannerSnippet(t *testing.T) {
	r := newTestRenderer()
	b := testBanner(2, "Interior Page")
	b.HTMLSnippet = `<iframe src="https://ads.test/frame"></iframe>`

	html, err := r.Banner(b)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, b.HTMLSnippet)
	assert.NotContains(t, out, "banner-link")
}

func TestPlacementRotation(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Placement("Home Page - Standard Ad", []domain.Banner{
		testBanner(3, "Home Page - Standard Ad"),
		testBanner(4, "Home Page - Standard Ad"),
	})
	require.NoError(t, err)

	out := string(html)
	assert.Equal(t, 1, strings.Count(out, `class="banner-rotation-container"`))
	assert.Contains(t, out, `data-interval="5000"`)
	assert.Equal(t, 2, strings.Count(out, `class="banner-slide`))
	assert.Equal(t, 1, strings.Count(out, `class="banner-slide active"`))
	assert.Contains(t, out, `data-banner-id="3"`)
	assert.Contains(t, out, `data-banner-id="4"`)
	assert.Contains(t, out, `<script src="/assets/banner-rotation.js" defer></script>`)
	assert.Contains(t, out, `console.log("Banners found: ", [3,4]);`)
}

func TestPlacementSingleBanner(t *testing.T) {
	r := newTestRenderer()
	html, err := r.Placement("Interior Page", []domain.Banner{testBanner(9, "Interior Page")})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `class="banner-slide active"`)
	assert.NotContains(t, out, RotationScript)
}

func TestPlacementEmpty(t *testing.T) {
	html, err := newTestRenderer().Placement("Interior Page", nil)
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestPageRendersLocationOnce(t *testing.T) {
	calls := 0
	lister := listerFunc(func(_ context.Context, location string) ([]domain.Banner, error) {
		calls++
		return []domain.Banner{testBanner(1, location), testBanner(2, location)}, nil
	})
	page := newTestRenderer().NewPage(lister, staticNonce("n0nce"), "banner_click", nil)
	ctx := context.Background()

	first, err := page.Placement(ctx, "Interior Page")
	require.NoError(t, err)
	second, err := page.Placement(ctx, "Interior Page")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(first), `class="banner-rotation-container"`))
	assert.Empty(t, second)
	assert.Equal(t, 1, calls)
	assert.True(t, page.Detected())
}

func TestPageRender(t *testing.T) {
	lister := listerFunc(func(_ context.Context, location string) ([]domain.Banner, error) {
		if location == "Interior Page" {
			return []domain.Banner{testBanner(5, location)}, nil
		}
		return nil, nil
	})
	page := newTestRenderer().NewPage(lister, staticNonce("n0nce"), "banner_click", nil)

	content := `<p>Intro</p>[random_banner location="Interior Page"]<p>Body</p>[random_banner location='Interior Page'][random_banner location="Nowhere"]`
	out, err := page.Render(context.Background(), content)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<p>Intro</p><div class=\"banner-rotation-container\""))
	assert.Equal(t, 1, strings.Count(out, `class="banner-rotation-container"`))
	assert.Contains(t, out, "<p>Body</p>")
	assert.NotContains(t, out, "[random_banner")
	assert.Contains(t, out, `var nonce = "n0nce";`)
	assert.Regexp(t, `var endpoint = "(\\/|/)api(\\/|/)v1(\\/|/)banners(\\/|/)click";`, out)
}

func TestPageWithoutShortcodes(t *testing.T) {
	lister := listerFunc(func(context.Context, string) ([]domain.Banner, error) {
		t.Fatal("unexpected banner lookup")
		return nil, nil
	})
	page := newTestRenderer().NewPage(lister, staticNonce("n0nce"), "banner_click", nil)

	out, err := page.Render(context.Background(), "<p>plain</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>plain</p>", out)
	assert.False(t, page.Detected())
}

func TestPageListError(t *testing.T) {
	boom := errors.New("db down")
	lister := listerFunc(func(context.Context, string) ([]domain.Banner, error) { return nil, boom })
	page := newTestRenderer().NewPage(lister, staticNonce("n0nce"), "banner_click", nil)

	_, err := page.Expand(context.Background(), `[random_banner location="Interior Page"]`)
	assert.ErrorIs(t, err, boom)
}
