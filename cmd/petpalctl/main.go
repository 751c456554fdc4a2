// Package main implementa petpalctl, un cliente de línea de comandos de la API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"petpal/internal/client"
	"petpal/internal/validation"

	"github.com/spf13/cobra"
)

const envServer = "PETPAL_URL"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	server  string
	timeout time.Duration
	out     io.Writer
}

func (o *rootOptions) client() (*client.Client, error) {
	return client.New(o.server, o.timeout)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}

	defaultServer := strings.TrimSpace(os.Getenv(envServer))
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}

	cmd := &cobra.Command{
		Use:          "petpalctl",
		Short:        "Cliente de la API de PetPal",
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", defaultServer, "URL base de la API ($"+envServer+")")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout por request")

	cmd.AddCommand(newTasksCmd(opts), newVisitsCmd(opts))
	return cmd
}

func newTasksCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Short:   "Tareas de cuidado",
		Aliases: []string{"task"},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar tareas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			items, err := c.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(opts.out, items)
		},
	}

	var (
		date      string
		daily     bool
		completed bool
	)
	add := &cobra.Command{
		Use:   "add <description>",
		Short: "Crear una tarea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			in := client.NewTask{
				Description: args[0],
				Completed:   completed,
				IsDaily:     daily,
			}
			if date != "" {
				t, err := validation.ParseTime(date)
				if err != nil {
					return err
				}
				in.Date = &t
			}
			t, err := c.CreateTask(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(opts.out, t)
		},
	}
	add.Flags().StringVar(&date, "date", "", "fecha (RFC3339 o YYYY-MM-DD)")
	add.Flags().BoolVar(&daily, "daily", false, "tarea diaria (recurrente)")
	add.Flags().BoolVar(&completed, "completed", false, "crear ya completada")

	set := &cobra.Command{
		Use:   "set <task-id> <true|false>",
		Short: "Cambiar el flag completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			value, err := validation.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid completed value %q", args[1])
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			t, err := c.SetCompleted(cmd.Context(), id, value)
			if err != nil {
				return err
			}
			return printJSON(opts.out, t)
		},
	}

	complete := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Registrar una completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			tc, err := c.CompleteTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(opts.out, tc)
		},
	}

	completions := &cobra.Command{
		Use:   "completions <task-id>",
		Short: "Listar completions de una tarea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			items, err := c.Completions(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(opts.out, items)
		},
	}

	cmd.AddCommand(list, add, set, complete, completions)
	return cmd
}

func newVisitsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "visits",
		Short:   "Visitas al veterinario",
		Aliases: []string{"vet-visits"},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar visitas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			items, err := c.ListVetVisits(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(opts.out, items)
		},
	}

	var date string
	add := &cobra.Command{
		Use:   "add <description>",
		Short: "Registrar una visita",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when := time.Now().UTC()
			if date != "" {
				t, err := validation.ParseTime(date)
				if err != nil {
					return err
				}
				when = t
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			v, err := c.CreateVetVisit(cmd.Context(), client.NewVetVisit{
				Date:        when,
				Description: args[0],
			})
			if err != nil {
				return err
			}
			return printJSON(opts.out, v)
		},
	}
	add.Flags().StringVar(&date, "date", "", "fecha de la visita (default: ahora)")

	cmd.AddCommand(list, add)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
