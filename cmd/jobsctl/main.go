// Command jobsctl lists and posts jobs against the job board API, filtering
// the listing locally the way the listing page does.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/justsurfingit/jobboard/internal/client"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/listing"
	"github.com/justsurfingit/jobboard/internal/models"
)

const usage = `usage: jobsctl [-api URL] <command> [flags]

commands:
  list    show jobs matching a filter
  create  post a new job
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "jobsctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("jobsctl", flag.ContinueOnError)
	api := global.String("api", envOr("JOBBOARD_API", "http://localhost:8080/api"), "job board API base URL")
	global.Usage = func() { fmt.Fprint(global.Output(), usage) }
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return errors.New("missing command")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	board := client.NewBoard(client.New(*api), nil)

	switch cmd, rest := global.Arg(0), global.Args()[1:]; cmd {
	case "list":
		return runList(ctx, board, rest, out)
	case "create":
		return runCreate(ctx, board, rest, out)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runList(ctx context.Context, board *client.Board, args []string, out io.Writer) error {
	def := listing.DefaultFilter()
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	title := fs.String("title", "", "title contains (case-insensitive)")
	location := fs.String("location", "", "location contains (case-insensitive)")
	typ := fs.String("type", "", "exact job type: "+strings.Join(listing.Types, ", "))
	bounds := fmt.Sprintf("(%g..%g, step %g)", float64(listing.SalaryMinK), float64(listing.SalaryMaxK), float64(listing.SalaryStepK))
	minK := fs.Float64("min", float64(def.Salary.Min), "minimum monthly salary in thousands "+bounds)
	maxK := fs.Float64("max", float64(def.Salary.Max), "maximum monthly salary in thousands "+bounds)
	asJSON := fs.Bool("json", false, "print canonical jobs as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *typ != "" && !listing.IsValidType(*typ) {
		return fmt.Errorf("-type must be one of %s", strings.Join(listing.Types, ", "))
	}

	f := listing.Filter{
		Title:    *title,
		Location: *location,
		Type:     *typ,
		Salary:   listing.SalaryRange{Min: sliderK(*minK), Max: sliderK(*maxK)}.Ordered(),
	}

	if err := board.Load(ctx); err != nil {
		return err
	}
	jobs := board.View(f)

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jobs)
	}

	fmt.Fprintf(out, "Salary: %s\n%d of %d jobs\n\n", f.Salary, len(jobs), len(board.Jobs()))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCOMPANY\tLOCATION\tTYPE\tSALARY (LPA)\tREMOTE\tDEADLINE")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g - %g\t%t\t%s\n",
			j.Title, j.Company, j.Location, j.Type,
			float64(j.SalaryFrom), float64(j.SalaryTo), j.Remote, j.Deadline.Format(time.DateOnly))
	}
	return tw.Flush()
}

func runCreate(ctx context.Context, board *client.Board, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	title := fs.String("title", "", "job title (required)")
	company := fs.String("company", "", "company name")
	location := fs.String("location", "", "location")
	typ := fs.String("type", listing.DefaultType, "job type")
	from := fs.String("from", "", "lower salary bound, LPA")
	to := fs.String("to", "", "upper salary bound, LPA")
	desc := fs.String("description", "", "description")
	deadline := fs.String("deadline", "", "application deadline, YYYY-MM-DD")
	remote := fs.Bool("remote", false, "remote position")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := dtos.JobCreationRequest{
		Title:               optional(*title),
		Company:             optional(*company),
		Location:            optional(*location),
		Type:                optional(*typ),
		SalaryRange:         optionalNumeric(*from),
		SalaryRange2:        optionalNumeric(*to),
		Description:         optional(*desc),
		ApplicationDeadline: optional(*deadline),
		IsRemote:            remote,
	}

	job, err := board.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created %s (%s at %s)\n", job.ID, job.Title, job.Company)
	return nil
}

// sliderK snaps v to the listing page's salary slider: the nearest step
// inside [SalaryMinK, SalaryMaxK].
func sliderK(v float64) listing.MonthlyK {
	step := float64(listing.SalaryStepK)
	k := listing.MonthlyK(math.Round(v/step) * step)
	return max(listing.SalaryMinK, min(listing.SalaryMaxK, k))
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func optionalNumeric(s string) *models.Numeric {
	p := optional(s)
	if p == nil {
		return nil
	}
	n := models.Numeric(*p)
	return &n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
