// Package markdown implements the rendering-engine boundary of the blog
// pipeline: frontmatter header extraction, goldmark-based body rendering
// with per-element styling, and filesystem discovery of content files.
package markdown
