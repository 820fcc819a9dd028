package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zulandar/yardline/internal/db"
	"github.com/zulandar/yardline/internal/record"
	"gorm.io/gorm"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record management commands",
	}

	cmd.AddCommand(newRecordListCmd())
	cmd.AddCommand(newRecordAddCmd())
	cmd.AddCommand(newRecordUpdateCmd())
	cmd.AddCommand(newRecordDeleteCmd())
	return cmd
}

// openRecords connects and makes sure the records table exists without
// discarding what is already stored.
func openRecords(configPath string) (*gorm.DB, error) {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		db.Close(gormDB)
		return nil, err
	}
	return gormDB, nil
}

func newRecordListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Long:  "Lists every record in id order. Output is formatted as a table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Yardline config file")
	return cmd
}

func runRecordList(cmd *cobra.Command, configPath string) error {
	gormDB, err := openRecords(configPath)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	recs, err := record.List(context.Background(), gormDB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No records found.")
		return nil
	}
	writeRecordTable(out, recs)
	return nil
}

// statFlags are the editable record fields shared by add and update.
type statFlags struct {
	name       string
	yards      int
	receptions int
	tds        int
}

func (s *statFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.name, "name", "", "player name")
	cmd.Flags().IntVar(&s.yards, "yards", 0, "receiving yards")
	cmd.Flags().IntVar(&s.receptions, "receptions", 0, "receptions")
	cmd.Flags().IntVar(&s.tds, "tds", 0, "receiving touchdowns")
}

func (s *statFlags) fields() record.Fields {
	return record.Fields{
		Name:       strings.TrimSpace(s.name),
		Yardage:    s.yards,
		UnitCount:  s.receptions,
		ScoreCount: s.tds,
	}
}

func newRecordAddCmd() *cobra.Command {
	var (
		configPath string
		stats      statFlags
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
		Long:  "Adds a record. Yards per reception is derived from --yards and --receptions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordAdd(cmd, configPath, stats.fields())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Yardline config file")
	stats.register(cmd)
	cmd.MarkFlagRequired("name")
	return cmd
}

func runRecordAdd(cmd *cobra.Command, configPath string, f record.Fields) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}

	gormDB, err := openRecords(configPath)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	rec, err := record.Insert(context.Background(), gormDB, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created record %d (%s, %s yds/rec)\n", rec.ID, rec.Name, formatYPU(rec.YardsPerUnit))
	return nil
}

func newRecordUpdateCmd() *cobra.Command {
	var (
		configPath string
		stats      statFlags
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a record",
		Long:  "Updates a record. Fields whose flags are not given keep their stored values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			return runRecordUpdate(cmd, configPath, id, stats)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Yardline config file")
	stats.register(cmd)
	return cmd
}

func runRecordUpdate(cmd *cobra.Command, configPath string, id int64, stats statFlags) error {
	gormDB, err := openRecords(configPath)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	ctx := context.Background()
	cur, err := record.Get(ctx, gormDB, id)
	if err != nil {
		return err
	}

	f := record.Fields{
		Name:       cur.Name,
		Yardage:    cur.Yardage,
		UnitCount:  cur.UnitCount,
		ScoreCount: cur.ScoreCount,
	}
	changed := cmd.Flags().Changed
	given := stats.fields()
	if changed("name") {
		if given.Name == "" {
			return fmt.Errorf("name is required")
		}
		f.Name = given.Name
	}
	if changed("yards") {
		f.Yardage = given.Yardage
	}
	if changed("receptions") {
		f.UnitCount = given.UnitCount
	}
	if changed("tds") {
		f.ScoreCount = given.ScoreCount
	}

	if err := record.Update(ctx, gormDB, id, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d (%s, %s yds/rec)\n", id, f.Name, formatYPU(record.YardsPerUnit(f.Yardage, f.UnitCount)))
	return nil
}

func newRecordDeleteCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Long:  "Deletes a record after confirmation. Deleting an id that does not exist is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			return runRecordDelete(cmd, configPath, id, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Yardline config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runRecordDelete(cmd *cobra.Command, configPath string, id int64, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	gormDB, err := openRecords(configPath)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	ctx := context.Background()
	if !skipConfirm {
		label := fmt.Sprintf("record %d", id)
		if cur, err := record.Get(ctx, gormDB, id); err == nil {
			label = fmt.Sprintf("record %d (%s)", id, cur.Name)
		} else if !errors.Is(err, record.ErrNotFound) {
			return err
		}
		ok, err := confirm(cmd, fmt.Sprintf("Delete %s?", label))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := record.Delete(ctx, gormDB, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted record %d\n", id)
	return nil
}

func parseRecordID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}
