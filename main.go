package main

import (
	"flag"
	"log"

	"github.com/DiscordGophers/docsite/footer"
	"github.com/DiscordGophers/docsite/render"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.config, "config", "config.json", "site configuration file")
	flag.StringVar(&opts.dir, "dir", "", "rewrite every html page under this directory")
	flag.StringVar(&opts.index, "index", "", "write the rendered home page to this file")
	flag.StringVar(&opts.vars, "vars", "variables.json", "home page variables, used with -index")
	flag.StringVar(&opts.language, "lang", "", "home page language")
	flag.StringVar(&opts.selector, "selector", render.DefaultSelector, "content container holding the headings to linkify, on rewritten pages and the home page")
	flag.BoolVar(&opts.credits, "credits", false, "replace the footer credits of rewritten pages")
	flag.BoolVar(&opts.dump, "dump", false, "print the loaded configuration and exit")
	flag.Parse()

	cfg := config(opts.config)
	if opts.dump {
		pp.Println(cfg)
		return
	}

	if opts.dir == "" && opts.index == "" {
		log.Fatal("nothing to do: specify -dir and/or -index")
	}

	popts := render.Options{ContentSelector: opts.selector}
	if opts.credits {
		popts.Credit = &footer.DefaultCredit
	}

	// The home page is processed while rendering; the directory pass must not
	// linkify it a second time.
	skip := map[string]bool{}
	if opts.index != "" {
		vars := variables(opts.vars)
		abs, res, err := writeHome(cfg, vars, opts.index, opts.language, popts)
		if err != nil {
			log.Fatalln(err)
		}
		log.Printf("Wrote %s (%d anchors)", opts.index, res.Anchors)
		skip[abs] = true
	}

	if opts.dir != "" {
		stats, err := processDir(opts.dir, popts, skip)
		if err != nil {
			log.Fatalln(errors.Wrapf(err, "could not process %s", opts.dir))
		}
		log.Println(stats)
	}
}

type options struct {
	config   string
	dir      string
	index    string
	vars     string
	language string
	selector string
	credits  bool
	dump     bool
}
