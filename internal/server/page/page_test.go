package page

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/landing/internal/server/abtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() Data {
	return Data{
		Title:            "Mr. RainbowSmoke",
		Description:      "Landing pages on the Edge.",
		URL:              "https://example.com/",
		Nonce:            "dGVzdG5vbmNl",
		Variant:          abtest.VariantA,
		AnalyticsToken:   "",
		TurnstileSiteKey: "",
		Year:             2026,
	}
}

func TestRender_NonceOnInlineBlocks(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Render(&sb, sampleData()))
	out := sb.String()

	assert.Contains(t, out, `<style nonce="dGVzdG5vbmNl">`)
	assert.Contains(t, out, `<script type="module" nonce="dGVzdG5vbmNl">`)
	assert.Contains(t, out, `<script type="application/ld+json" nonce="dGVzdG5vbmNl">`)
}

func TestRender_VariantTagline(t *testing.T) {
	a := sampleData()
	a.Variant = abtest.VariantA
	b := sampleData()
	b.Variant = abtest.VariantB

	var outA, outB strings.Builder
	require.NoError(t, Render(&outA, a))
	require.NoError(t, Render(&outB, b))

	assert.Contains(t, outA.String(), "Build and ship insanely fast landing pages on the Edge.")
	assert.Contains(t, outB.String(), "instant loads, global reach, zero servers")
	assert.NotEqual(t, outA.String(), outB.String())
}

func TestRender_OptionalScripts(t *testing.T) {
	d := sampleData()

	var plain strings.Builder
	require.NoError(t, Render(&plain, d))
	assert.NotContains(t, plain.String(), "cloudflareinsights.com")
	assert.NotContains(t, plain.String(), "challenges.cloudflare.com/turnstile")

	d.AnalyticsToken = "tok123"
	d.TurnstileSiteKey = "1x00000000000000000000AA"
	var full strings.Builder
	require.NoError(t, Render(&full, d))
	assert.Contains(t, full.String(), "static.cloudflareinsights.com/beacon.min.js")
	assert.Contains(t, full.String(), "tok123")
	assert.Contains(t, full.String(), "challenges.cloudflare.com/turnstile/v0/api.js")
	assert.Contains(t, full.String(), `data-sitekey="1x00000000000000000000AA"`)
}

func TestRender_EscapesTitle(t *testing.T) {
	d := sampleData()
	d.Title = `<script>alert(1)</script>`

	var sb strings.Builder
	require.NoError(t, Render(&sb, d))
	assert.NotContains(t, sb.String(), "<script>alert(1)</script>")
}

func TestRobotsTxt(t *testing.T) {
	out := RobotsTxt("https://example.com")
	assert.Contains(t, out, "User-agent: *")
	assert.Contains(t, out, "Sitemap: https://example.com/sitemap.xml")
}

func TestSitemapXML(t *testing.T) {
	out := SitemapXML("https://example.com", time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	assert.Contains(t, out, "<loc>https://example.com/</loc>")
	assert.Contains(t, out, "<lastmod>2026-09-01T12:00:00Z</lastmod>")
}

func TestOGSVG_EscapesTitle(t *testing.T) {
	out := OGSVG(`Tom & <Jerry>`)
	assert.Contains(t, out, "Tom &amp; &lt;Jerry&gt;")
	assert.NotContains(t, out, "<Jerry>")
}

func TestFaviconSVG(t *testing.T) {
	assert.Contains(t, FaviconSVG(), "<svg")
}
