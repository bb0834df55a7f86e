/*
Package main is the relver cli tool (Release Version Resolver).
It computes release facts from the repository tag set and the triggering
reference and emits them as GitHub Actions outputs.
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/v0rts/relver"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Trigger metadata
	OptionsTrigger OptionsTrigger `group:"Trigger"`
	// Tag set source
	OptionsSource OptionsSource `group:"Tag source"`
	// Output destination
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsTrigger struct {
	RefType string `short:"t" long:"ref-type"     env:"GITHUB_REF_TYPE" description:"Triggering ref type" choice:"branch" choice:"tag" default:"branch"`
	RefName string `short:"r" long:"ref-name"     env:"GITHUB_REF_NAME" description:"Triggering branch or tag name"`
	BaseRef string `short:"b" long:"base-ref"     env:"GITHUB_BASE_REF" description:"Pull request base branch; overrides ref-name as the release line"`
	Kind    string `short:"k" long:"release-kind" env:"RELEASE_KIND"    description:"Requested release kind" choice:"patch" choice:"minor" choice:"major" choice:"no_release" default:"no_release"`
}

type OptionsSource struct {
	From       string `short:"f" long:"tags-from"  description:"Where to read the tag set" choice:"stdin" choice:"github" default:"stdin"`
	Repository string `short:"R" long:"repository" env:"GITHUB_REPOSITORY" description:"GitHub repository (owner/repo)"`
	Token      string `long:"token"                env:"GITHUB_TOKEN"      description:"GitHub API token"`
}

type OptionsOutput struct {
	Config string `short:"c" long:"config" description:"Path to YAML config file" default:".relver.yml"`
	Out    string `short:"o" long:"output" env:"GITHUB_OUTPUT" description:"File to append key=value outputs to (stdout when empty)"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `relver — Release Version Resolver.
A one-shot CI tool: given the repository tags and the triggering reference,
it reports whether the tag is the latest release, the docker image tag to
apply, the latest version on the release line, and the next version to cut.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := relver.LoadConfig(opt.OptionsOutput.Config)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		}
		cfg = relver.DefaultConfig()
	}
	if opt.OptionsSource.Repository != "" {
		cfg.Repository = opt.OptionsSource.Repository
	}

	kind := relver.ParseKind(opt.OptionsTrigger.Kind)
	if kind == relver.KindInvalid {
		fmt.Fprintf(os.Stderr, "invalid release kind %q\n", opt.OptionsTrigger.Kind)
		os.Exit(2)
	}

	refType := relver.ParseRefType(opt.OptionsTrigger.RefType)
	if refType == relver.RefInvalid {
		fmt.Fprintf(os.Stderr, "invalid ref type %q\n", opt.OptionsTrigger.RefType)
		os.Exit(2)
	}

	ctx := context.Background()

	source, err := tagSource(opt.OptionsSource, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	tags, err := source.Tags(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	res, err := relver.Resolve(relver.Input{
		RefType: refType,
		RefName: opt.OptionsTrigger.RefName,
		BaseRef: opt.OptionsTrigger.BaseRef,
		Kind:    kind,
		Tags:    tags,
		Trunk:   cfg.Trunk,
		Marker:  cfg.Marker,
		Project: relver.ShortName(cfg.Repository),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	out := os.Stdout
	if opt.OptionsOutput.Out != "" {
		f, err := os.OpenFile(opt.OptionsOutput.Out, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open output file: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	if err := relver.WriteOutputs(out, res); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

// tagSource picks the tag set origin: stdin (one tag per line) or the
// GitHub API for the configured repository.
func tagSource(opt OptionsSource, cfg *relver.Config) (relver.TagSource, error) {
	switch opt.From {
	case "github":
		return relver.NewGitHubSource(cfg.Repository, opt.Token)

	default: // stdin
		tags, err := readTags(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return relver.StaticSource(tags), nil
	}
}

// readTags reads tags line by line, skipping empties.
func readTags(f *os.File) ([]string, error) {
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(f)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}

	return in, sc.Err()
}
