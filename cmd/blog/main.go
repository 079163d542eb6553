package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(os.Args[2:])
	case "show":
		err = runShow(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("blog %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: blog <list|show> [flags]")
}

func runList(args []string) error {
	fs := flag.NewFlagSet("blog-list", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	contentDir := fs.String("content-dir", "", "Directory holding the markdown content files")
	extension := fs.String("extension", "", "Content file extension (defaults to .md)")
	format := fs.String("format", "table", "Output format: table or json")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := bootstrap.LoadConfig(bootstrap.Options{
		ConfigPath: *configPath,
		ContentDir: *contentDir,
		Extension:  *extension,
	})
	if err != nil {
		return err
	}

	module, _, err := bootstrap.BuildModule(cfg)
	if err != nil {
		return err
	}

	metas, err := module.Posts().List(context.Background())
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(metas)
	case "table":
		for _, meta := range metas {
			fmt.Printf("%s\t%s\t%s\t%s\n", meta.ID, meta.Date, meta.Slug, meta.Title)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("blog-show", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	contentDir := fs.String("content-dir", "", "Directory holding the markdown content files")
	extension := fs.String("extension", "", "Content file extension (defaults to .md)")
	slug := fs.String("slug", "", "Slug of the post to render")
	metaOnly := fs.Bool("meta", false, "Print the post metadata as JSON instead of the rendered body")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		return fmt.Errorf("slug is required")
	}

	cfg, err := bootstrap.LoadConfig(bootstrap.Options{
		ConfigPath: *configPath,
		ContentDir: *contentDir,
		Extension:  *extension,
	})
	if err != nil {
		return err
	}

	module, _, err := bootstrap.BuildModule(cfg)
	if err != nil {
		return err
	}

	post, err := module.Posts().Get(context.Background(), *slug)
	if err != nil {
		return err
	}

	if *metaOnly {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(post.PostMeta)
	}

	_, err = os.Stdout.Write(post.BodyHTML)
	return err
}
