// Command healthctl is a small terminal client for a running healthtrack
// server: it logs in, submits predictions from a JSON intake file, fetches
// narratives and prints stored history.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/healthtrack-app/healthtrack/internal/adapter"
	"github.com/healthtrack-app/healthtrack/models"
)

const tokenEnv = "HEALTHTRACK_TOKEN"

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "healthtrack server base URL")
	name := flag.String("name", "", "full name (login)")
	email := flag.String("email", "", "email address (login)")
	uniqueID := flag.String("id", "", "account unique_id (login)")
	inputFile := flag.String("file", "", "JSON intake file (predict)")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Timeout: *timeout,
	})
	if token := os.Getenv(tokenEnv); token != "" {
		client.SetToken(token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var err error
	switch command {
	case "login":
		err = runLogin(ctx, client, *name, *email, *uniqueID)
	case "predict":
		err = runPredict(ctx, client, *inputFile)
	case "narrative":
		err = runNarrative(ctx, client)
	case "history":
		err = runHistory(ctx, client)
	case "version":
		err = runVersion(ctx, client)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "healthctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: healthctl [flags] <command>

commands:
  login      resolve an account (-name and -email, or -id) and print the token
  predict    submit the intake form from -file and print the result
  narrative  print lifestyle advice for the last prediction
  history    print the stored prediction history
  version    print the server build version

set `+tokenEnv+` to reuse a token issued by a previous login`)
	flag.PrintDefaults()
}

func runLogin(ctx context.Context, client adapter.ServerAdapter, name, email, uniqueID string) error {
	user, err := client.Login(ctx, models.LoginRequest{
		Name:     name,
		Email:    email,
		UniqueID: uniqueID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", user.UniqueID, user.Email)
	fmt.Printf("export %s=%s\n", tokenEnv, client.Token())
	return nil
}

func runPredict(ctx context.Context, client adapter.ServerAdapter, inputFile string) error {
	if inputFile == "" {
		return fmt.Errorf("predict requires -file")
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading intake file: %w", err)
	}

	var input models.PredictionInput
	if err = json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parsing intake file: %w", err)
	}

	result, err := client.Predict(ctx, input)
	if err != nil {
		return err
	}

	fmt.Println(result.Summary)
	if result.StoreWarning != "" {
		fmt.Printf("warning: %s\n", result.StoreWarning)
	}
	if len(result.Contributions) > 0 {
		fmt.Println("\ntop contributing factors:")
		limit := len(result.Contributions)
		if limit > 5 {
			limit = 5
		}
		for _, c := range result.Contributions[:limit] {
			fmt.Printf("  %+.4f  %s\n", c.Value, c.Description)
		}
	}
	return nil
}

func runNarrative(ctx context.Context, client adapter.ServerAdapter) error {
	narrative, err := client.Narrative(ctx)
	if err != nil {
		return err
	}

	fmt.Println(narrative.Narrative)
	return nil
}

func runHistory(ctx context.Context, client adapter.ServerAdapter) error {
	records, err := client.History(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no stored predictions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPREDICTION\tPROBABILITY")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\n", rec.Date, rec.Prediction, rec.Probability*100)
	}
	return w.Flush()
}

func runVersion(ctx context.Context, client adapter.ServerAdapter) error {
	version, err := client.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("server version: %s\n", version.Version)
	return nil
}
