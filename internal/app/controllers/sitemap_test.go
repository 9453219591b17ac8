package controllers

import (
	"strings"
	"testing"
	"time"

	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	entries := []repositories.SlugEntry{
		{Slug: "malaria-prevalence-study", UpdatedAt: time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)},
		{Slug: "community-health-outcomes", UpdatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := string(buildSitemap("https://example.org/", now, entries))

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.True(t, strings.HasSuffix(out, "</urlset>\n"))

	// Root and listing pages, with the trailing slash on base trimmed once.
	assert.Contains(t, out, "<loc>https://example.org/</loc>")
	assert.Contains(t, out, "<loc>https://example.org/projects</loc>")
	assert.NotContains(t, out, "example.org//projects")

	// One entry per published project, carrying its update date.
	assert.Contains(t, out, "<loc>https://example.org/projects/malaria-prevalence-study</loc>")
	assert.Contains(t, out, "<lastmod>2026-07-15</lastmod>")
	assert.Contains(t, out, "<loc>https://example.org/projects/community-health-outcomes</loc>")
	assert.Contains(t, out, "<lastmod>2026-06-01</lastmod>")

	assert.Equal(t, 2, strings.Count(out, "<changefreq>daily</changefreq>"))
	assert.Equal(t, 2, strings.Count(out, "<changefreq>monthly</changefreq>"))
	assert.Equal(t, 1, strings.Count(out, "<priority>1.0</priority>"))
	assert.Equal(t, 1, strings.Count(out, "<priority>0.9</priority>"))
	assert.Equal(t, 2, strings.Count(out, "<priority>0.8</priority>"))
	assert.Equal(t, 4, strings.Count(out, "<url>"))
}

func TestBuildSitemapNoPublishedProjects(t *testing.T) {
	out := string(buildSitemap("https://example.org", time.Now(), nil))

	// The static pages are always present.
	assert.Equal(t, 2, strings.Count(out, "<url>"))
	assert.Contains(t, out, "<loc>https://example.org/projects</loc>")
}

func TestBuildRobots(t *testing.T) {
	out := string(buildRobots("https://example.org/"))

	require.True(t, strings.HasPrefix(out, "User-agent: *\n"))
	assert.Contains(t, out, "Allow: /\n")
	assert.Contains(t, out, "Allow: /projects/\n")
	assert.Contains(t, out, "Disallow: /admin/\n")
	assert.Contains(t, out, "Disallow: /api/\n")
	assert.Contains(t, out, "Sitemap: https://example.org/sitemap.xml\n")
}
