package main

import (
	"log"

	"github.com/DiscordGophers/docsite/site"
)

func config(path string) site.Config {
	cfg, err := site.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func variables(path string) site.Variables {
	vars, err := site.LoadVariables(path)
	if err != nil {
		log.Fatal(err)
	}
	return vars
}
