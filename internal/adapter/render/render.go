// Package render turns banners into the HTML fragments embedded in pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"banner-rotator/internal/core/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets/*.js
var assetsFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Assets holds the static scripts served under /assets/.
var Assets, _ = fs.Sub(assetsFS, "assets")

// RotationScript is the path the rotation script is served from.
const RotationScript = "/assets/banner-rotation.js"

// Options configure a Renderer.
type Options struct {
	// SiteURL is the origin hosting the pages. Banner links to any other host
	// open in a new tab.
	SiteURL url.URL
	// RotationInterval is how long each slide stays visible.
	RotationInterval time.Duration
	// ClickEndpoint receives click tracking posts.
	ClickEndpoint string
}

// Renderer builds banner markup. It is safe for concurrent use.
type Renderer struct {
	siteHost      string
	intervalMS    int64
	clickEndpoint string
}

// NewRenderer returns a renderer for opts.
func NewRenderer(opts Options) *Renderer {
	interval := opts.RotationInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Renderer{
		siteHost:      opts.SiteURL.Hostname(),
		intervalMS:    interval.Milliseconds(),
		clickEndpoint: opts.ClickEndpoint,
	}
}

type bannerView struct {
	ID          int64
	Slug        string
	URL         string
	External    bool
	Title       string
	ImageURL    string
	Description template.HTML
	Snippet     template.HTML
}

// Banner renders a single banner wrapper. Snippet and description markup
// are emitted as stored.
func (r *Renderer) Banner(b domain.Banner) (template.HTML, error) {
	view := bannerView{
		ID:          b.ID,
		Slug:        Slug(b.Location),
		URL:         b.URL,
		External:    r.external(b.URL),
		Title:       b.Title,
		ImageURL:    b.ImageURL,
		Description: template.HTML(b.Description),
		Snippet:     template.HTML(b.HTMLSnippet),
	}
	return execute("banner", view)
}

type placementView struct {
	RenderID   string
	Slug       string
	IntervalMS int64
	Slides     []template.HTML
	IDs        []int64
	Rotate     bool
	ScriptURL  string
}

// Placement renders the rotation container for banners. The first slide is
// active and the rotation script is referenced only when there is something
// to rotate. No banners yield an empty fragment.
func (r *Renderer) Placement(location string, banners []domain.Banner) (template.HTML, error) {
	if len(banners) == 0 {
		return "", nil
	}
	view := placementView{
		RenderID:   uuid.NewString(),
		Slug:       Slug(location),
		IntervalMS: r.intervalMS,
		Slides:     make([]template.HTML, 0, len(banners)),
		IDs:        make([]int64, 0, len(banners)),
		Rotate:     len(banners) > 1,
		ScriptURL:  RotationScript,
	}
	for _, b := range banners {
		slide, err := r.Banner(b)
		if err != nil {
			return "", err
		}
		view.Slides = append(view.Slides, slide)
		view.IDs = append(view.IDs, b.ID)
	}
	return execute("placement", view)
}

// TrackingScript renders the script posting banner clicks with nonce.
func (r *Renderer) TrackingScript(nonce string) (template.HTML, error) {
	return execute("tracking", struct {
		Endpoint string
		Nonce    string
	}{r.clickEndpoint, nonce})
}

// external reports whether link's host differs from the site host. Links
// without a host, relative ones included, count as external.
func (r *Renderer) external(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return true
	}
	return u.Hostname() != r.siteHost
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// bannerIDs is used in log attributes.
func bannerIDs(banners []domain.Banner) string {
	var buf []byte
	for i, b := range banners {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, b.ID, 10)
	}
	return string(buf)
}
