// Package main provides the signer command that verifies or re-signs a generated dashboard.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"bookstats/internal/formatter"
	"bookstats/pkg/metadata"
)

func main() {
	inputPath := flag.String("input", "", "Path to dashboard file (e.g., output/dashboard.md)")
	resign := flag.Bool("resign", false, "Re-align tables and write a fresh signature after manual edits")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: signer -input <dashboard.md> [-resign]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	contentBytes, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	content := string(contentBytes)
	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(content))

	meta, _ := metadata.Extract(content)

	if !*resign {
		ok, verifyErr := metadata.Verify(content)
		if !ok {
			log.Fatalf("❌ Signature check failed: %v\n", verifyErr)
		}

		fmt.Printf("✅ Signature valid (validation: %t, last modified: %s)\n",
			meta.Validation, meta.LastModify.Format("2006-01-02 15:04:05"))

		return
	}

	if meta == nil {
		fmt.Println("⚠️  No metadata block found. Signing as unvalidated.")
		meta = &metadata.Metadata{Version: formatter.DashboardVersion}
	} else if _, verifyErr := metadata.Verify(content); errors.Is(verifyErr, metadata.ErrHashMismatch) {
		fmt.Println("⚠️  Content changed since last signature.")
	}

	fmt.Println("✍️  Signing file...")

	meta.LastModify = time.Time{}
	signed := formatter.FormatMarkdown(content, *meta)

	if err := os.WriteFile(*inputPath, []byte(signed), 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Signed and saved to: %s\n", *inputPath)
}
