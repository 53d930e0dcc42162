package render

import (
	"context"
	"html/template"
	"log/slog"
	"regexp"
	"strings"

	"banner-rotator/internal/core/domain"
)

// Shortcode is the tag expanded into a banner placement.
const Shortcode = "random_banner"

var (
	shortcodeRe = regexp.MustCompile(`\[` + Shortcode + `(\s[^\]]*)?\]`)
	attrRe      = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

// BannerLister returns the eligible banners of a location.
type BannerLister interface {
	ListBanners(ctx context.Context, location string) ([]domain.Banner, error)
}

// NonceIssuer issues action nonces.
type NonceIssuer interface {
	Issue(action, subject string) (string, error)
}

// Page expands banner shortcodes for a single response. A Page must not be
// shared between requests.
type Page struct {
	renderer    *Renderer
	banners     BannerLister
	nonces      NonceIssuer
	clickAction string
	logger      *slog.Logger

	processed map[string]struct{}
	detected  bool
}

// NewPage starts a page. clickAction is the nonce action embedded in the
// click tracking script.
func (r *Renderer) NewPage(banners BannerLister, nonces NonceIssuer, clickAction string, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.Default()
	}
	return &Page{
		renderer:    r,
		banners:     banners,
		nonces:      nonces,
		clickAction: clickAction,
		logger:      logger,
		processed:   make(map[string]struct{}),
	}
}

// Detected reports whether a placement was processed on this page.
func (p *Page) Detected() bool {
	return p.detected
}

// Placement renders the banners of location. A location already rendered on
// this page yields an empty fragment.
func (p *Page) Placement(ctx context.Context, location string) (template.HTML, error) {
	if _, ok := p.processed[location]; ok {
		p.logger.DebugContext(ctx, "skipping duplicate banner location", slog.String("location", location))
		return "", nil
	}
	p.processed[location] = struct{}{}
	p.detected = true

	banners, err := p.banners.ListBanners(ctx, location)
	if err != nil {
		return "", err
	}
	if len(banners) == 0 {
		p.logger.DebugContext(ctx, "no banners for location", slog.String("location", location))
		return "", nil
	}
	p.logger.DebugContext(ctx, "rendering banner location",
		slog.String("location", location),
		slog.String("banner_ids", bannerIDs(banners)),
	)
	return p.renderer.Placement(location, banners)
}

// Expand replaces every banner shortcode in content with its placement.
func (p *Page) Expand(ctx context.Context, content string) (string, error) {
	matches := shortcodeRe.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		last = m[1]

		var attrs string
		if m[2] >= 0 {
			attrs = content[m[2]:m[3]]
		}
		html, err := p.Placement(ctx, shortcodeAttr(attrs, "location"))
		if err != nil {
			return "", err
		}
		b.WriteString(string(html))
	}
	b.WriteString(content[last:])
	return b.String(), nil
}

// Footer returns the click tracking script when the page holds a placement,
// and nothing otherwise.
func (p *Page) Footer() (template.HTML, error) {
	if !p.detected {
		return "", nil
	}
	nonce, err := p.nonces.Issue(p.clickAction, "")
	if err != nil {
		return "", err
	}
	return p.renderer.TrackingScript(nonce)
}

// Render expands content and appends the footer.
func (p *Page) Render(ctx context.Context, content string) (string, error) {
	body, err := p.Expand(ctx, content)
	if err != nil {
		return "", err
	}
	footer, err := p.Footer()
	if err != nil {
		return "", err
	}
	return body + string(footer), nil
}

func shortcodeAttr(attrs, name string) string {
	for _, m := range attrRe.FindAllStringSubmatch(attrs, -1) {
		if !strings.EqualFold(m[1], name) {
			continue
		}
		for _, v := range m[2:] {
			if v != "" {
				return v
			}
		}
		return ""
	}
	return ""
}
