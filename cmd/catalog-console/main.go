// Package main runs the terminal catalog console against a catalog
// server. It is a thin binding over internal/console: it parses
// commands, prompts for form fields, and renders the derived view.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/fairyhunter13/catalog-console/internal/client"
	"github.com/fairyhunter13/catalog-console/internal/config"
	"github.com/fairyhunter13/catalog-console/internal/console"
	"github.com/fairyhunter13/catalog-console/internal/obs"
	"github.com/fairyhunter13/catalog-console/internal/rate"
)

func main() {
	cfg := config.Load()
	obs.InitLogger(true)

	products := client.NewProductClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	rates := rate.NewProvider(cfg.RateURL, cfg.CurrencyCode, cfg.CurrencySymbol, cfg.RateFallback, &http.Client{Timeout: cfg.RateTimeout})
	ctrl := console.NewController(products, rates)

	ctx := context.Background()
	ctrl.Start(ctx)

	in := bufio.NewScanner(os.Stdin)
	render(ctrl.View())
	fmt.Println(`commands: list | search <text> | add | edit <id> | del <id> | quit`)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
		switch cmd {
		case "":
			continue
		case "list":
			ctrl.Search("")
			render(ctrl.View())
		case "search":
			ctrl.Search(arg)
			render(ctrl.View())
		case "add":
			ctrl.AddRequested()
			submitForm(ctx, ctrl, in)
		case "edit":
			if !ctrl.EditRequested(arg) {
				fmt.Println("no product with that id")
				continue
			}
			submitForm(ctx, ctrl, in)
		case "del":
			if !confirm(in, "Delete this product?") {
				continue
			}
			if err := ctrl.DeleteRequested(ctx, arg); err != nil {
				fmt.Println("error:", err)
				continue
			}
			render(ctrl.View())
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// submitForm prompts for the draft fields and submits. On failure the
// session stays open and the user may retry or dismiss.
func submitForm(ctx context.Context, ctrl *console.Controller, in *bufio.Scanner) {
	for {
		d := ctrl.View().Draft
		d.Name = prompt(in, "Name", d.Name)
		d.Price = prompt(in, "Price (USD)", d.Price)
		d.Stock = prompt(in, "Stock", d.Stock)
		if err := ctrl.FormSubmitted(ctx, d); err != nil {
			fmt.Println("error:", err)
			if confirm(in, "Retry?") {
				continue
			}
			ctrl.ModalDismissed()
			return
		}
		render(ctrl.View())
		return
	}
}

func prompt(in *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !in.Scan() {
		return current
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		return current
	}
	return text
}

func confirm(in *bufio.Scanner, q string) bool {
	fmt.Printf("%s [y/N]: ", q)
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "y" || answer == "yes"
}

func render(v console.View) {
	if v.Fallback {
		fmt.Println("(offline: showing demo data)")
	}
	if len(v.Rows) == 0 {
		fmt.Println("No products found.")
	}
	for _, r := range v.Rows {
		fmt.Printf("%-24s  %-20s  %12s  stock %d\n", r.ID, r.Name, r.DisplayPrice, r.Stock)
	}
	if v.Query != "" {
		fmt.Printf("%d of %d products match %q\n", len(v.Rows), v.Total, v.Query)
	} else {
		fmt.Printf("%d products\n", v.Total)
	}
}
