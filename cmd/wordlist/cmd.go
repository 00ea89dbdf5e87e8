package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/profiler/pkg/logger"
	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

// DefaultOutput is the file written when --output is not set. "-" writes to stdout.
const DefaultOutput = "wordlist.txt"

var errNoFacts = errors.New("no facts provided")

type options struct {
	req         wordlist.Request
	minLen      string
	maxLen      string
	output      string
	interactive bool
	logLevel    string
}

// fact binds one Request field to its flag and interactive prompt.
type fact struct {
	flag   string
	prompt string
	usage  string
	field  func(*wordlist.Request) *string
}

var facts = []fact{
	{"first-name", "First name", "target first name", func(r *wordlist.Request) *string { return &r.FirstName }},
	{"last-name", "Last name", "target last name", func(r *wordlist.Request) *string { return &r.LastName }},
	{"dob", "Date of birth (DDMMYYYY)", "target date of birth", func(r *wordlist.Request) *string { return &r.DOB }},
	{"pet", "Pet name", "pet name", func(r *wordlist.Request) *string { return &r.PetName }},
	{"company", "Company or school", "company or school", func(r *wordlist.Request) *string { return &r.Company }},
	{"partner", "Partner name", "partner name", func(r *wordlist.Request) *string { return &r.PartnerName }},
	{"partner-dob", "Partner date of birth", "partner date of birth", func(r *wordlist.Request) *string { return &r.PartnerDOB }},
	{"father", "Father name", "father name", func(r *wordlist.Request) *string { return &r.FatherName }},
	{"father-dob", "Father date of birth", "father date of birth", func(r *wordlist.Request) *string { return &r.FatherDOB }},
	{"mother", "Mother name", "mother name", func(r *wordlist.Request) *string { return &r.MotherName }},
	{"mother-dob", "Mother date of birth", "mother date of birth", func(r *wordlist.Request) *string { return &r.MotherDOB }},
	{"siblings", "Sibling names (comma separated)", "comma separated sibling names", func(r *wordlist.Request) *string { return &r.SiblingNames }},
	{"sibling-dobs", "Sibling dates of birth (comma separated)", "comma separated sibling dates of birth", func(r *wordlist.Request) *string { return &r.SiblingDOBs }},
	{"hobby", "Favorite hobby", "favorite hobby", func(r *wordlist.Request) *string { return &r.FavHobby }},
	{"person", "Favorite person", "favorite person", func(r *wordlist.Request) *string { return &r.FavPerson }},
	{"influencer", "Favorite influencer", "favorite influencer", func(r *wordlist.Request) *string { return &r.FavInfluencer }},
	{"keywords", "Extra keywords (comma separated)", "comma separated extra keywords", func(r *wordlist.Request) *string { return &r.Keywords }},
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Generate a candidate password wordlist from personal facts",
		Long: `Generate a deduplicated candidate password list from facts about a
target and write it one word per line.

Examples:
  wordlist --first-name Alice --dob 1990 --pet Rex
  wordlist --keywords "chess,jazz" --leet --min 8 --max 16 -o alice.txt
  wordlist --interactive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			log := logger.New(
				logger.WithFormat(logger.FormatText),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(level),
			)
			if err := run(cmd, opts, log); err != nil {
				log.Error("wordlist generation failed", logger.Error(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	for _, f := range facts {
		flags.StringVar(f.field(&opts.req), f.flag, "", f.usage)
	}
	flags.BoolVar(&opts.req.UseLeet, "leet", false, "add leet substitutions")
	flags.StringVar(&opts.minLen, "min", strconv.Itoa(wordlist.DefaultMinLen), "minimum word length")
	flags.StringVar(&opts.maxLen, "max", strconv.Itoa(wordlist.DefaultMaxLen), "maximum word length")
	flags.StringVarP(&opts.output, "output", "o", DefaultOutput, `output file, "-" for stdout`)
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for every fact")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, opts *options, log *slog.Logger) error {
	if opts.interactive {
		if err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), opts); err != nil {
			return err
		}
	}

	req := opts.req
	var fallback bool
	req.MinLen, req.MaxLen, fallback = lengthWindow(opts.minLen, opts.maxLen)
	if fallback {
		log.Warn("invalid length window, using defaults",
			slog.String("min", opts.minLen),
			slog.String("max", opts.maxLen),
			slog.Int("min_len", req.MinLen),
			slog.Int("max_len", req.MaxLen),
		)
	}

	seeds := req.Seeds()
	if len(seeds) == 0 {
		return errNoFacts
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	start := time.Now()
	res := wordlist.New().Generate(req)

	if err := writeResult(cmd.OutOrStdout(), opts.output, res); err != nil {
		return err
	}

	log.Info("wordlist written",
		logger.TargetName(req.TargetName()),
		logger.SeedCount(len(seeds)),
		logger.WordCount(res.Len()),
		logger.Duration(time.Since(start)),
		slog.String("output", opts.output),
	)
	return nil
}

// lengthWindow parses the bounds; blank values take the defaults and an
// unparsable value resets both, reporting fallback.
func lengthWindow(minRaw, maxRaw string) (minLen, maxLen int, fallback bool) {
	minLen, minErr := atoiDefault(minRaw, wordlist.DefaultMinLen)
	maxLen, maxErr := atoiDefault(maxRaw, wordlist.DefaultMaxLen)
	if minErr != nil || maxErr != nil {
		return wordlist.DefaultMinLen, wordlist.DefaultMaxLen, true
	}
	return minLen, maxLen, false
}

func atoiDefault(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func writeResult(stdout io.Writer, output string, res *wordlist.Result) (err error) {
	if output == "-" {
		_, err = res.WriteTo(stdout)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if _, err := res.WriteTo(f); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// prompt asks for every fact, the leet switch and the length window. Flags
// already set act as defaults shown in brackets.
func prompt(in io.Reader, out io.Writer, opts *options) error {
	sc := bufio.NewScanner(in)
	ask := func(label, current string) (string, error) {
		if current != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, current)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return current, nil
		}
		if answer := strings.TrimSpace(sc.Text()); answer != "" {
			return answer, nil
		}
		return current, nil
	}

	fmt.Fprintln(out, "Enter target details (leave blank to skip)")
	for _, f := range facts {
		field := f.field(&opts.req)
		answer, err := ask(f.prompt, *field)
		if err != nil {
			return err
		}
		*field = answer
	}

	leetDefault := "n"
	if opts.req.UseLeet {
		leetDefault = "y"
	}
	leet, err := ask("Enable leet substitutions? (y/N)", leetDefault)
	if err != nil {
		return err
	}
	opts.req.UseLeet = strings.HasPrefix(strings.ToLower(leet), "y")

	if opts.minLen, err = ask("Minimum length", opts.minLen); err != nil {
		return err
	}
	if opts.maxLen, err = ask("Maximum length", opts.maxLen); err != nil {
		return err
	}
	return nil
}
