// agendactl is the practitioner's terminal client: it logs in against
// the TherapyCare API and drives the same agenda core the dashboard
// uses (week projection, booking coordinator, patient directory).
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"therapycare-api/internal/agenda"
	"therapycare-api/internal/booking"
	"therapycare-api/internal/client"
	"therapycare-api/internal/directory"
	"therapycare-api/internal/model"
	"therapycare-api/internal/session"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "agendactl",
		Short: "TherapyCare practitioner agenda client",
	}
	root.AddCommand(loginCmd())
	root.AddCommand(logoutCmd())
	root.AddCommand(agendaCmd())
	root.AddCommand(addCmd())
	root.AddCommand(deleteCmd())
	root.AddCommand(patientsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func apiBase() string {
	if v := os.Getenv("THERAPYCARE_API"); v != "" {
		return v
	}
	return "http://localhost:8000"
}

func sessionPath() string {
	if v := os.Getenv("THERAPYCARE_SESSION"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".therapycare", "session.json")
}

// openClient loads the session and hands its token to the API client.
func openClient() (*client.Client, *session.Holder, error) {
	sess, err := session.Open(sessionPath())
	if err != nil {
		return nil, nil, err
	}
	c := client.New(apiBase())
	c.SetToken(sess.Token())
	return c, sess, nil
}

func requireLogin(sess *session.Holder) error {
	if !sess.Authenticated() {
		return fmt.Errorf("not logged in, run: agendactl login")
	}
	return nil
}

type printNotifier struct{}

func (printNotifier) Success(msg string) { fmt.Println("✔ " + msg) }
func (printNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "✘ "+msg) }

func confirmPrompt(assumeYes *bool) func(string) bool {
	return func(prompt string) bool {
		if assumeYes != nil && *assumeYes {
			return true
		}
		fmt.Printf("%s [y/N] ", prompt)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, sess, err := openClient()
			if err != nil {
				return err
			}
			resp, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := sess.Set(resp.Token, resp.Practitioner); err != nil {
				return err
			}
			fmt.Printf("logged in as %s (%s)\n", resp.Practitioner.FullName, resp.Practitioner.Specialty)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Open(sessionPath())
			if err != nil {
				return err
			}
			return sess.Clear()
		},
	}
}

func agendaCmd() *cobra.Command {
	var weekOffset int
	var list bool
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the week grid (or the flat list with --list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, sess, err := openClient()
			if err != nil {
				return err
			}
			if err := requireLogin(sess); err != nil {
				return err
			}

			co := booking.New(c, directory.New(c), printNotifier{}, nil, zerolog.Nop())
			if err := co.Refresh(cmd.Context()); err != nil {
				return err
			}
			appts := co.Appointments()

			if list {
				printList(appts)
				return nil
			}

			now := time.Now()
			anchor := agenda.WeekStart(now)
			for i := 0; i < weekOffset; i++ {
				anchor = agenda.Navigate(anchor, agenda.Next, now)
			}
			for i := 0; i > weekOffset; i-- {
				anchor = agenda.Navigate(anchor, agenda.Previous, now)
			}
			printWeek(agenda.BuildWeekView(appts, anchor))
			return nil
		},
	}
	cmd.Flags().IntVar(&weekOffset, "week", 0, "week offset from the current week (e.g. -1, 2)")
	cmd.Flags().BoolVar(&list, "list", false, "print the flat list grouped by date instead of the grid")
	return cmd
}

func addCmd() *cobra.Command {
	var in booking.CreateInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, sess, err := openClient()
			if err != nil {
				return err
			}
			if err := requireLogin(sess); err != nil {
				return err
			}

			dir := directory.New(c)
			if err := dir.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(os.Stderr, "warning: patient list unavailable")
			}
			if !dir.HasPatients() {
				return fmt.Errorf("no patients yet, add one first")
			}

			co := booking.New(c, dir, printNotifier{}, nil, zerolog.Nop())
			return co.Create(cmd.Context(), in)
		},
	}
	cmd.Flags().StringVar(&in.PatientID, "patient", "", "patient id")
	cmd.Flags().StringVar(&in.Date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Time, "time", "", "time (HH:MM)")
	cmd.Flags().IntVar(&in.Duration, "duration", 60, "duration in minutes")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "optional notes")
	cmd.MarkFlagRequired("patient")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")
	return cmd
}

func deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <appointment-id>",
		Short: "Delete an appointment (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, sess, err := openClient()
			if err != nil {
				return err
			}
			if err := requireLogin(sess); err != nil {
				return err
			}

			co := booking.New(c, directory.New(c), printNotifier{}, confirmPrompt(&yes), zerolog.Nop())
			err = co.Delete(cmd.Context(), args[0])
			if err == booking.ErrCancelled {
				fmt.Println("cancelled")
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func patientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patients",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, sess, err := openClient()
			if err != nil {
				return err
			}
			if err := requireLogin(sess); err != nil {
				return err
			}

			dir := directory.New(c)
			patients := dir.List(cmd.Context())
			if dir.Degraded() {
				fmt.Fprintln(os.Stderr, "warning: patient list unavailable, showing cached data")
			}
			if len(patients) == 0 {
				fmt.Println("no patients yet")
				return nil
			}
			for _, p := range patients {
				fmt.Printf("%s  %-25s %s\n", p.ID, p.FullName, p.Phone)
			}
			return nil
		},
	}
}

func printWeek(w agenda.WeekView) {
	fmt.Printf("week of %s\n\n", w.Start.Format(agenda.DateLayout))
	fmt.Printf("%5s", "")
	for _, day := range w.Days {
		fmt.Printf(" %-14s", day.Format("Mon 02/01"))
	}
	fmt.Println()

	for hi, hour := range agenda.GridHours() {
		fmt.Printf("%02d:00", hour)
		for di := range w.Days {
			cell := ""
			for _, a := range w.Slots[di][hi] {
				if cell != "" {
					cell += ","
				}
				cell += a.Time + " " + a.PatientName
			}
			if r := []rune(cell); len(r) > 14 {
				cell = string(r[:13]) + "…"
			}
			fmt.Printf(" %-14s", cell)
		}
		fmt.Println()
	}
}

func printList(appts []model.Appointment) {
	grouped := agenda.GroupByDate(appts)
	for _, date := range agenda.SortedDates(grouped) {
		fmt.Println(date)
		for _, a := range grouped[date] {
			fmt.Printf("  %s  %-25s %d min  %s\n", a.Time, a.PatientName, a.Duration, a.Notes)
		}
	}
}
