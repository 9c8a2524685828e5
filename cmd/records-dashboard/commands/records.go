package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/myusername/records-dashboard/internal/config"
	"github.com/myusername/records-dashboard/internal/utils"
	"github.com/myusername/records-dashboard/pkg/filter"
	"github.com/myusername/records-dashboard/pkg/models"
	"github.com/myusername/records-dashboard/pkg/parser"
	"github.com/myusername/records-dashboard/pkg/scraper"
)

var recordsFlags struct {
	url         string
	events      []string
	class       string
	fed         string
	name        string
	regex       bool
	export      string
	showOptions bool
}

func init() {
	f := recordsCmd.Flags()
	f.StringVar(&recordsFlags.url, "url", "", "Records page to scrape (default: records_url from config)")
	f.StringSliceVar(&recordsFlags.events, "event", filter.RecordEvents, "Event types to show; pass an empty value to select none")
	f.StringVar(&recordsFlags.class, "class", filter.ShowAll, "Weight class to show")
	f.StringVar(&recordsFlags.fed, "fed", filter.ShowAll, "Federation to show")
	f.StringVar(&recordsFlags.name, "name", "", "Lifter name search")
	f.BoolVar(&recordsFlags.regex, "regex", false, "Treat --name as a regular expression")
	f.StringVar(&recordsFlags.export, "export", "", "Write the filtered records to a .csv or .xlsx file")
	f.BoolVar(&recordsFlags.showOptions, "options", false, "List the available classes and federations")
	rootCmd.AddCommand(recordsCmd)
}

var recordsCmd = &cobra.Command{
	Use:   "records [--event <type>]... [--class <class>] [--fed <fed>] [--name <pattern> [--regex]]",
	Short: "Scrapes the world records page and prints the filtered tables and rank 1 chart.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := recordsFlags.url
		if url == "" {
			url = cfg.RecordsURL
		}

		data := loadRecords(cmd.Context(), cfg, url)
		out := cmd.OutOrStdout()

		if recordsFlags.showOptions {
			fmt.Fprintf(out, "Classes: %s\n", strings.Join(filter.Options(data, filter.ClassColumn, filter.ShowAll), ", "))
			fmt.Fprintf(out, "Federations: %s\n", strings.Join(filter.Options(data, filter.FedColumn, filter.ShowAll), ", "))
			return nil
		}

		sel := filter.RecordSelection{
			Events: nonEmpty(recordsFlags.events),
			Class:  recordsFlags.class,
			Fed:    recordsFlags.fed,
			Name:   recordsFlags.name,
			Regex:  recordsFlags.regex,
		}
		rep := filter.BuildRecordsReport(data, sel)

		utils.RenderWarnings(out, rep.Warnings)
		switch {
		case len(rep.Groups) == 0:
			utils.RenderBarChart(out, rep.ChartTitle, "", nil, cfg.ChartWidth)
		case rep.ValueColumn == "":
			fmt.Fprintln(out, rep.ChartTitle)
			fmt.Fprintln(out, "No valid lift column found to display chart.")
		default:
			utils.RenderBarChart(out, rep.ChartTitle, rep.ValueColumn+" (kg)", rep.Chart, cfg.ChartWidth)
		}
		fmt.Fprintln(out)
		utils.RenderGroups(out, rep.Groups)

		if recordsFlags.export != "" {
			if err := utils.SaveDataset(rep.Filtered, recordsFlags.export); err != nil {
				return fmt.Errorf("error exporting records: %w", err)
			}
			slog.Info("saved filtered records", "path", recordsFlags.export, "records", rep.Filtered.Len())
		}
		return nil
	},
}

// loadRecords fetches and extracts the records page. Fetch and parse
// failures are logged and reported as an empty dataset.
func loadRecords(ctx context.Context, cfg *config.Config, url string) *models.Dataset {
	data, err := fetchRecords(ctx, cfg, url)
	if err != nil {
		slog.ErrorContext(ctx, "no records available", "url", url, "error", err)
		return models.Empty()
	}
	return data
}

func fetchRecords(ctx context.Context, cfg *config.Config, url string) (*models.Dataset, error) {
	client := scraper.NewClient(cfg.HTTPTimeout)
	htmlContent, err := client.FetchURL(ctx, url)
	if err != nil {
		return nil, err
	}

	if cfg.SaveHTML {
		saveHTML(cfg.OutputDir, htmlContent)
	}

	return parser.ExtractRecordsFromHTML(htmlContent)
}

func saveHTML(outputDir, htmlContent string) {
	htmlDir := filepath.Join(outputDir, "html")
	if err := os.MkdirAll(htmlDir, 0755); err != nil {
		slog.Warn("failed to create directory", "dir", htmlDir, "error", err)
		return
	}
	path := filepath.Join(htmlDir, fmt.Sprintf("records_%s.html", time.Now().Format("20060102_150405")))
	if err := scraper.SaveContentToFile(path, htmlContent); err != nil {
		slog.Warn("error saving records HTML", "path", path, "error", err)
		return
	}
	slog.Info("saved records HTML", "path", path)
}

// nonEmpty drops blank entries so --event= selects nothing
func nonEmpty(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
