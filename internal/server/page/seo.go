package page

import (
	"fmt"
	"html"
	"time"
)

// RobotsTxt allows all crawlers and points them at the sitemap.
func RobotsTxt(origin string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", origin)
}

// SitemapXML lists the single landing URL with the given modification time.
func SitemapXML(origin string, lastMod time.Time) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>1.0</priority>
  </url>
</urlset>
`, origin, lastMod.UTC().Format(time.RFC3339))
}

// FaviconSVG returns a small vector favicon so the page works without a
// static asset bundle.
func FaviconSVG() string {
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <defs>
    <linearGradient id="g" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0" stop-color="#2ec4b6"/>
      <stop offset="1" stop-color="#9b5de5"/>
    </linearGradient>
  </defs>
  <rect width="64" height="64" rx="14" fill="#0b0b10"/>
  <path d="M12 40c10-18 30-18 40 0" fill="none" stroke="url(#g)" stroke-width="6" stroke-linecap="round"/>
  <circle cx="32" cy="24" r="5" fill="#f1f3f5"/>
</svg>
`
}

// OGSVG renders the social share card for the given title.
func OGSVG(title string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">
  <defs>
    <linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0" stop-color="#0b0b10"/>
      <stop offset="1" stop-color="#1a1030"/>
    </linearGradient>
    <linearGradient id="arc" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0" stop-color="#2ec4b6"/>
      <stop offset="1" stop-color="#9b5de5"/>
    </linearGradient>
  </defs>
  <rect width="1200" height="630" fill="url(#bg)"/>
  <path d="M150 470c180-260 720-260 900 0" fill="none" stroke="url(#arc)" stroke-width="28" stroke-linecap="round"/>
  <text x="600" y="280" text-anchor="middle" font-family="system-ui, sans-serif" font-size="84" font-weight="700" fill="#f1f3f5">%s</text>
  <text x="600" y="360" text-anchor="middle" font-family="system-ui, sans-serif" font-size="34" fill="#a9b2bc">Landing pages on the Edge</text>
</svg>
`, html.EscapeString(title))
}
