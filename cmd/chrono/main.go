// Command chrono resolves local date-times against time zone rules loaded
// from TZif files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-chrono/chrono"
	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/tzdb"
	"github.com/ngrash/go-chrono/tzif"
	"github.com/ngrash/go-chrono/zone"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "chrono",
		Short:   "Calendrical calculator with time zone rules",
		Version: version,
	}

	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(transitionsCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(zonesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadZone builds a zone from a TZif file, the system zone database or a
// fixed-offset id, in that order of preference.
func loadZone(id, tzifPath string) (chrono.Zone, error) {
	if tzifPath != "" {
		f, err := os.Open(tzifPath)
		if err != nil {
			return chrono.Zone{}, err
		}
		defer f.Close()
		rules, err := tzif.DecodeRules(f)
		if err != nil {
			return chrono.Zone{}, fmt.Errorf("decode %s: %w", tzifPath, err)
		}
		if id == "" {
			id = strings.TrimSuffix(filepath.Base(tzifPath), filepath.Ext(tzifPath))
		}
		return chrono.NewZone(id, rules)
	}
	if id == "" {
		return chrono.Zone{}, fmt.Errorf("either --zone or --tzif is required")
	}
	if strings.ContainsRune(id, '/') {
		db, err := tzdb.OpenSystem()
		if err != nil {
			return chrono.Zone{}, err
		}
		return chrono.ZoneOf(id, db)
	}
	return chrono.ZoneOf(id, zone.NewRegistry())
}

func parsePolicy(s string) (zone.Policy, error) {
	switch s {
	case "post":
		return zone.PostTransition, nil
	case "pre":
		return zone.PreTransition, nil
	case "retain":
		return zone.RetainOffset, nil
	case "next-valid":
		return zone.NextValid, nil
	case "strict":
		return zone.Strict, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (use post, pre, retain, next-valid or strict)", s)
	}
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <local-date-time>",
		Short: "Resolve a local date-time in a zone",
		Long: `Classify a local date-time against a zone's rules and resolve it to an
offset under the chosen policy.

Examples:
  chrono resolve 2024-03-31T02:30 --zone Europe/Paris
  chrono resolve 2024-03-31T02:30 --tzif Paris.tzif --policy strict
  chrono resolve 2024-06-30T11:30 --zone UTC+01:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, _ := cmd.Flags().GetString("zone")
			tzifPath, _ := cmd.Flags().GetString("tzif")
			policyStr, _ := cmd.Flags().GetString("policy")

			dt, err := civil.ParseDateTime(args[0])
			if err != nil {
				return err
			}
			policy, err := parsePolicy(policyStr)
			if err != nil {
				return err
			}
			z, err := loadZone(zoneID, tzifPath)
			if err != nil {
				return err
			}

			info := z.Rules().OffsetInfoAt(dt)
			fmt.Printf("Local:      %v\n", dt)
			fmt.Printf("Zone:       %v\n", z)
			fmt.Printf("Kind:       %v\n", info.Kind())
			if t, ok := info.Transition(); ok {
				fmt.Printf("Transition: %v\n", t)
			}

			resolved, err := chrono.ZonedDateTimeOf(dt, z, policy)
			if err != nil {
				return err
			}
			fmt.Printf("Resolved:   %v (policy %v)\n", resolved, policy)
			fmt.Printf("Instant:    %d\n", resolved.EpochSecond())
			return nil
		},
	}

	cmd.Flags().StringP("zone", "z", "", "Zone id (database ids like Europe/Paris or fixed forms like UTC+01:00)")
	cmd.Flags().StringP("tzif", "t", "", "Path to a TZif file")
	cmd.Flags().StringP("policy", "p", "post", "Resolution policy (post, pre, retain, next-valid, strict)")
	return cmd
}

func transitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: "List a zone's offset transitions",
		Long: `Print the recorded transitions of a TZif zone and, if present, the
recurring rules that apply beyond the last one.

Example:
  chrono transitions --tzif /usr/share/zoneinfo/Europe/Paris --year 2024`,
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, _ := cmd.Flags().GetString("zone")
			tzifPath, _ := cmd.Flags().GetString("tzif")
			year, _ := cmd.Flags().GetInt("year")

			z, err := loadZone(zoneID, tzifPath)
			if err != nil {
				return err
			}
			rules := z.Rules()
			if rules.IsFixed() {
				fmt.Printf("%v is a fixed-offset zone at %v\n", z, rules.OffsetAt(0))
				return nil
			}

			for _, t := range rules.Transitions() {
				printTransition(t)
			}
			recurring := rules.TransitionRules()
			if len(recurring) > 0 {
				fmt.Printf("Recurring rules (materialized for %d):\n", year)
				for _, r := range recurring {
					printTransition(r.TransitionForYear(year))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("zone", "z", "", "Zone id (database ids like Europe/Paris or fixed forms like UTC+01:00)")
	cmd.Flags().StringP("tzif", "t", "", "Path to a TZif file")
	cmd.Flags().IntP("year", "y", 2024, "Year to materialize recurring rules for")
	return cmd
}

func printTransition(t zone.Transition) {
	kind := "overlap"
	if t.IsGap() {
		kind = "gap"
	}
	fmt.Printf("  %d  %vZ  %v -> %v  (%s, local %v to %v)\n",
		t.Instant(), utcLocal(t.Instant()), t.OffsetBefore(), t.OffsetAfter(), kind, t.LocalBefore(), t.LocalAfter())
}

func utcLocal(instant int64) civil.DateTime {
	dt, err := civil.DateTimeOfEpochSecond(instant, 0, 0)
	if err != nil {
		panic(err)
	}
	return dt
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <date-time-text>",
		Short: "Parse a date-time text and print its fields",
		Long: `Parse an offset date-time or zoned date-time text and print its
components.

Examples:
  chrono inspect 2024-06-30T11:30:59.123+02:00
  chrono inspect "2024-10-27T02:30+01:00[Europe/Paris]" --tzif Paris.tzif`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tzifPath, _ := cmd.Flags().GetString("tzif")
			text := args[0]

			if strings.HasSuffix(text, "]") {
				open := strings.LastIndexByte(text, '[')
				if open < 0 {
					return fmt.Errorf("inspect %q: missing [zone-id] suffix", text)
				}
				id := text[open+1 : len(text)-1]

				var provider zone.Provider = zone.NewRegistry()
				if tzifPath != "" || strings.ContainsRune(id, '/') {
					reg := zone.NewRegistry()
					loaded, err := loadZone(id, tzifPath)
					if err != nil {
						return err
					}
					if err := reg.Register(id, loaded.Rules()); err != nil {
						return err
					}
					provider = reg
				}
				z, err := chrono.ParseZonedDateTime(text, provider)
				if err != nil {
					return err
				}
				fmt.Printf("Zoned:   %v\n", z)
				fmt.Printf("Zone:    %v\n", z.Zone())
				printDateTime(z.DateTime())
				fmt.Printf("Offset:  %v\n", z.Offset())
				fmt.Printf("Instant: %d\n", z.EpochSecond())
				return nil
			}

			o, err := chrono.ParseOffsetDateTime(text)
			if err != nil {
				return err
			}
			fmt.Printf("Offset date-time: %v\n", o)
			printDateTime(o.DateTime())
			fmt.Printf("Offset:  %v\n", o.Offset())
			fmt.Printf("Instant: %d\n", o.EpochSecond())
			return nil
		},
	}

	cmd.Flags().StringP("tzif", "t", "", "Path to a TZif file for the zone id in the text")
	return cmd
}

func zonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the zones of the zone database",
		Long: `Print the version and zone ids of a compiled zone database directory.

Example:
  chrono zones --dir /usr/share/zoneinfo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			var (
				db  *tzdb.DB
				err error
			)
			if dir != "" {
				db, err = tzdb.Open(dir)
			} else {
				db, err = tzdb.OpenSystem()
			}
			if err != nil {
				return err
			}
			if v := db.Version(); v != "" {
				fmt.Printf("# version %s\n", v)
			}
			ids, err := db.IDs()
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Zone database directory (default: system locations)")
	return cmd
}

func printDateTime(dt civil.DateTime) {
	fmt.Printf("Date:    %v (%v, day %d of year)\n", dt.Date(), dt.Weekday(), dt.Date().DayOfYear())
	fmt.Printf("Time:    %v\n", dt.Time())
}
