// Command textmark chunks and slices text files offline, with the same
// paragraph and offset rules the API server uses.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"textmark/internal/chunker"
)

const version = "0.1.0"

// CLI defines the command-line interface for textmark.
type CLI struct {
	Chunks  ChunksCmd  `cmd:"" help:"Print paragraph chunks of a file as JSON"`
	Extract ExtractCmd `cmd:"" help:"Print the text between two character offsets"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ChunksCmd prints one page of chunks, or every chunk with --all.
type ChunksCmd struct {
	Path     string `arg:"" help:"Text file to chunk" type:"existingfile"`
	Page     int    `name:"page" default:"1" help:"Page number, starting at 1"`
	PageSize int    `name:"page-size" default:"1" help:"Chunks per page"`
	All      bool   `name:"all" help:"Print every chunk with its offsets instead of one page"`
}

// ExtractCmd prints the text in [Start, End).
type ExtractCmd struct {
	Path  string `arg:"" help:"Text file to read" type:"existingfile"`
	Start int    `arg:"" help:"Start offset in characters, inclusive"`
	End   int    `arg:"" help:"End offset in characters, exclusive"`
}

// VersionCmd prints the version.
type VersionCmd struct{}

type pageOutput struct {
	File        string   `json:"file"`
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
	HasNext     bool     `json:"has_next"`
	HasPrev     bool     `json:"has_prev"`
	TotalChunks int      `json:"total_chunks"`
	Chunk       []string `json:"chunk"`
	ChunkIndex  *int     `json:"chunk_index"`
	ChunkStart  *int     `json:"chunk_start"`
	ChunkEnd    *int     `json:"chunk_end"`
}

type allOutput struct {
	File        string          `json:"file"`
	TotalChunks int             `json:"total_chunks"`
	Chunks      []chunker.Chunk `json:"chunks"`
}

func (c *ChunksCmd) Run(ctx *kong.Context) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if c.All {
		chunks := chunker.Split(string(data))
		return writeJSON(ctx.Stdout, allOutput{File: c.Path, TotalChunks: len(chunks), Chunks: chunks})
	}

	result, err := chunker.Page(string(data), c.Page, c.PageSize)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Stdout, pageOutput{
		File:        c.Path,
		Page:        result.Page,
		PageSize:    result.PageSize,
		HasNext:     result.HasNext,
		HasPrev:     result.HasPrev,
		TotalChunks: result.TotalChunks,
		Chunk:       result.Texts(),
		ChunkIndex:  result.ChunkIndex,
		ChunkStart:  result.ChunkStart,
		ChunkEnd:    result.ChunkEnd,
	})
}

func (c *ExtractCmd) Run(ctx *kong.Context) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	text, err := chunker.Extract(string(data), c.Start, c.End)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Stdout, text)
	return err
}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "textmark version %s\n", version)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("textmark"),
		kong.Description("Paragraph chunking and offset extraction for text documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "textmark: %v\n", err)
		os.Exit(1)
	}
}
