package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/selorm/scholarbase/internal/middleware"
)

// GetSitemap godoc
// @Summary Sitemap for search engines
// @Description Lists the public site root, the project listing and every published project.
// @Tags public
// @Produce xml
// @Success 200 {string} string "sitemap XML"
// @Router /sitemap.xml [get]
func (c *PublicController) GetSitemap(ctx *gin.Context) {
	entries, err := c.projectService.ListPublishedSlugs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Data(200, "application/xml; charset=utf-8", buildSitemap(c.publicURL, time.Now(), entries))
}

// GetRobots godoc
// @Summary robots.txt for search engines
// @Tags public
// @Produce plain
// @Success 200 {string} string "robots.txt"
// @Router /robots.txt [get]
func (c *PublicController) GetRobots(ctx *gin.Context) {
	ctx.Data(200, "text/plain; charset=utf-8", buildRobots(c.publicURL))
}

// buildSitemap renders the urlset. The root and project listing pages change
// often; individual project pages carry their last update time.
func buildSitemap(baseURL string, now time.Time, entries []repositories.SlugEntry) []byte {
	base := strings.TrimRight(baseURL, "/")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	writeSitemapURL(&b, base+"/", now, "daily", "1.0")
	writeSitemapURL(&b, base+"/projects", now, "daily", "0.9")
	for _, e := range entries {
		writeSitemapURL(&b, base+"/projects/"+e.Slug, e.UpdatedAt, "monthly", "0.8")
	}
	b.WriteString("</urlset>\n")
	return []byte(b.String())
}

func writeSitemapURL(b *strings.Builder, loc string, lastmod time.Time, changefreq, priority string) {
	fmt.Fprintf(b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
		loc, lastmod.Format("2006-01-02"), changefreq, priority)
}

func buildRobots(baseURL string) []byte {
	base := strings.TrimRight(baseURL, "/")
	return []byte(fmt.Sprintf(`User-agent: *
Allow: /
Allow: /projects/
Allow: /projects/*

Disallow: /admin/
Disallow: /api/

Sitemap: %s/sitemap.xml
`, base))
}
