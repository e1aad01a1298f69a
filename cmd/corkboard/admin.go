package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/spf13/cobra"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(_ context.Context, a *app) error {
				fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", a.cfg.Store.Driver)
				return nil
			})
		},
	}
}

func userCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add [username]",
		Short: "Register a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app) error {
				u, err := a.directory.CreateUser(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u.ID, u.Username)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app) error {
				users, err := a.directory.ListUsers(ctx)
				if err != nil {
					return err
				}
				for _, u := range users {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u.ID, u.Username)
				}
				return nil
			})
		},
	})
	return cmd
}

func boardCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	var public bool
	add := &cobra.Command{
		Use:   "add [title]",
		Short: "Create an empty board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app) error {
				b, err := a.directory.CreateBoard(ctx, board.CreateBoardRequest{Title: args[0], IsPublic: public})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.ID, b.Title)
				return nil
			})
		},
	}
	add.Flags().BoolVar(&public, "public", false, "make the board public")

	var trashed bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app) error {
				var (
					boards []board.Board
					err    error
				)
				if trashed {
					boards, err = a.workspace.TrashedBoards(ctx)
				} else {
					boards, err = a.directory.ListBoards(ctx)
				}
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tPUBLIC\tCREATED")
				for _, b := range boards {
					fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", b.ID, b.Title, b.IsPublic, b.CreatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	}
	list.Flags().BoolVar(&trashed, "trashed", false, "list boards in the trash instead")

	cmd.AddCommand(add, list)
	return cmd
}
