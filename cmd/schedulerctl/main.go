// Command schedulerctl is a terminal client for the training scheduler
// API. It drives the same client, cache, validation, and mutation
// layers a UI would, printing results as JSON and notifications to the
// log.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ericstephens/scheduler/internal/api"
	"github.com/ericstephens/scheduler/internal/config"
	"github.com/ericstephens/scheduler/internal/domain"
	"github.com/ericstephens/scheduler/internal/forms"
	"github.com/ericstephens/scheduler/internal/logging"
	"github.com/ericstephens/scheduler/internal/mutation"
	"github.com/ericstephens/scheduler/internal/notify"
	"github.com/ericstephens/scheduler/internal/platform/version"
	"github.com/ericstephens/scheduler/internal/query"
	"github.com/ericstephens/scheduler/internal/schedule"
)

const usage = `Usage: schedulerctl <resource> <command> [flags]

Resources and commands:
  instructors  list | show | create | deactivate | stats
  courses      list | show | create | deactivate
  sessions     list | show | status | actions
  locations    list | show | create | deactivate
  version      print build information

Run "schedulerctl <resource> <command> -h" for command flags.`

type app struct {
	cfg       *config.Config
	cache     *query.Cache
	runner    *mutation.Runner
	validator *forms.Validator

	instructors *api.Instructors
	courses     *api.Courses
	sessions    *api.Sessions
	locations   *api.Locations
}

func main() {
	if len(os.Args) == 2 && os.Args[1] == "version" {
		if err := printJSON(version.Get()); err != nil {
			log.Fatalf("Command failed: %v", err)
		}
		return
	}
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	client := api.New(cfg.APIBaseURL, api.WithTimeout(cfg.RequestTimeout))
	cache := query.New(query.Options{
		Freshness: cfg.CacheFreshness,
		Retention: cfg.CacheRetention,
		Retries:   cfg.FetchRetries,
	})
	defer cache.Stop()

	a := &app{
		cfg:         cfg,
		cache:       cache,
		runner:      mutation.NewRunner(cache, notify.LogNotifier{}),
		validator:   forms.New(),
		instructors: api.NewInstructors(client),
		courses:     api.NewCourses(client),
		sessions:    api.NewSessions(client),
		locations:   api.NewLocations(client),
	}

	ctx := context.Background()
	resource, command := os.Args[1], os.Args[2]
	args := os.Args[3:]

	var runErr error
	switch resource {
	case "instructors":
		runErr = a.runInstructors(ctx, command, args)
	case "courses":
		runErr = a.runCourses(ctx, command, args)
	case "sessions":
		runErr = a.runSessions(ctx, command, args)
	case "locations":
		runErr = a.runLocations(ctx, command, args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if runErr != nil {
		log.Fatalf("Command failed: %v", runErr)
	}
}

func (a *app) runInstructors(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		fs := flag.NewFlagSet("instructors list", flag.ExitOnError)
		activeOnly := fs.Bool("active-only", false, "Only active instructors")
		fs.Parse(args)

		key := query.NewKey(domain.ResourceInstructors, struct {
			ActiveOnly bool `json:"active_only"`
		}{*activeOnly})
		list, err := query.Cached(ctx, a.cache, key, func(ctx context.Context) ([]domain.Instructor, error) {
			return a.instructors.List(ctx, *activeOnly)
		})
		if err != nil {
			return err
		}
		return printJSON(list)

	case "show":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		instructor, err := query.Cached(ctx, a.cache, query.DetailKey(domain.ResourceInstructors, id),
			func(ctx context.Context) (*domain.Instructor, error) {
				return a.instructors.Get(ctx, id)
			})
		if err != nil {
			return err
		}
		return printJSON(instructor)

	case "create":
		fs := flag.NewFlagSet("instructors create", flag.ExitOnError)
		var req domain.CreateInstructorRequest
		fs.StringVar(&req.FirstName, "first-name", "", "First name")
		fs.StringVar(&req.LastName, "last-name", "", "Last name")
		fs.StringVar(&req.Email, "email", "", "Email address")
		fs.StringVar(&req.PhoneNumber, "phone", "", "Phone number")
		fs.StringVar(&req.CallSign, "call-sign", "", "Call sign")
		fs.StringVar(&req.Notes, "notes", "", "Notes")
		fs.Parse(args)

		form := forms.NewForm(a.validator, req)
		return form.Submit(ctx, func(ctx context.Context, payload domain.CreateInstructorRequest) error {
			created, err := mutation.Run(ctx, a.runner, mutation.CreateInstructorOp(),
				func(ctx context.Context) (*domain.Instructor, error) {
					return a.instructors.Create(ctx, payload)
				})
			if err != nil {
				return err
			}
			return printJSON(created)
		})

	case "deactivate":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		_, err = mutation.Run(ctx, a.runner, mutation.DeleteInstructorOp(id),
			func(ctx context.Context) (*domain.Confirmation, error) {
				return a.instructors.Delete(ctx, id)
			})
		return err

	case "stats":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		stats, err := a.instructors.Stats(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(stats)
	}

	return fmt.Errorf("unknown instructors command %q", command)
}

func (a *app) runCourses(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		fs := flag.NewFlagSet("courses list", flag.ExitOnError)
		activeOnly := fs.Bool("active-only", false, "Only active courses")
		fs.Parse(args)

		key := query.NewKey(domain.ResourceCourses, struct {
			ActiveOnly bool `json:"active_only"`
		}{*activeOnly})
		list, err := query.Cached(ctx, a.cache, key, func(ctx context.Context) ([]domain.Course, error) {
			return a.courses.List(ctx, *activeOnly)
		})
		if err != nil {
			return err
		}
		return printJSON(list)

	case "show":
		fs := flag.NewFlagSet("courses show", flag.ExitOnError)
		code := fs.String("code", "", "Look up by course code instead of id")
		fs.Parse(args)

		if *code != "" {
			course, err := a.courses.GetByCode(ctx, *code)
			if err != nil {
				return err
			}
			return printJSON(course)
		}
		id, err := parseID(fs.Args())
		if err != nil {
			return err
		}
		course, err := a.courses.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(course)

	case "create":
		fs := flag.NewFlagSet("courses create", flag.ExitOnError)
		var req domain.CreateCourseRequest
		fs.StringVar(&req.CourseName, "name", "", "Course name")
		fs.StringVar(&req.CourseCode, "code", "", "Course code")
		fs.StringVar(&req.Description, "description", "", "Description")
		fs.IntVar(&req.DurationDays, "duration-days", 1, "Duration in days")
		fs.Parse(args)

		form := forms.NewForm(a.validator, req)
		return form.Submit(ctx, func(ctx context.Context, payload domain.CreateCourseRequest) error {
			created, err := mutation.Run(ctx, a.runner, mutation.CreateCourseOp(),
				func(ctx context.Context) (*domain.Course, error) {
					return a.courses.Create(ctx, payload)
				})
			if err != nil {
				return err
			}
			return printJSON(created)
		})

	case "deactivate":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		_, err = mutation.Run(ctx, a.runner, mutation.DeleteCourseOp(id),
			func(ctx context.Context) (*domain.Confirmation, error) {
				return a.courses.Delete(ctx, id)
			})
		return err
	}

	return fmt.Errorf("unknown courses command %q", command)
}

func (a *app) runSessions(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		fs := flag.NewFlagSet("sessions list", flag.ExitOnError)
		var filter domain.SessionFilter
		var status string
		fs.IntVar(&filter.CourseID, "course", 0, "Filter by course id")
		fs.StringVar(&status, "status", "", "Filter by status")
		fs.IntVar(&filter.Skip, "skip", 0, "Pagination offset")
		fs.IntVar(&filter.Limit, "limit", 0, "Pagination limit")
		fs.Parse(args)

		filter.Status = domain.SessionStatus(status)
		if status != "" && !filter.Status.Valid() {
			return fmt.Errorf("unknown session status %q", status)
		}
		list, err := a.sessions.List(ctx, filter)
		if err != nil {
			return err
		}
		return printJSON(list)

	case "show":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		session, err := a.sessions.Get(ctx, id)
		if err != nil {
			return err
		}
		days, err := a.sessions.DaysFor(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(struct {
			Session *domain.CourseSession     `json:"session"`
			Days    []domain.CourseSessionDay `json:"days"`
		}{session, days})

	case "status":
		fs := flag.NewFlagSet("sessions status", flag.ExitOnError)
		status := fs.String("set", "", "New status (scheduled|in_progress|completed|cancelled)")
		fs.Parse(args)

		id, err := parseID(fs.Args())
		if err != nil {
			return err
		}
		newStatus := domain.SessionStatus(*status)
		if !newStatus.Valid() {
			return fmt.Errorf("unknown session status %q", *status)
		}
		_, err = mutation.Run(ctx, a.runner, mutation.SetSessionStatusOp(id, newStatus),
			func(ctx context.Context) (*domain.Confirmation, error) {
				return a.sessions.SetStatus(ctx, id, newStatus)
			})
		return err

	case "actions":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		session, err := a.sessions.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(schedule.NextActions(session.Status))
	}

	return fmt.Errorf("unknown sessions command %q", command)
}

func (a *app) runLocations(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		fs := flag.NewFlagSet("locations list", flag.ExitOnError)
		activeOnly := fs.Bool("active-only", false, "Only active locations")
		fs.Parse(args)

		list, err := a.locations.List(ctx, *activeOnly)
		if err != nil {
			return err
		}
		return printJSON(list)

	case "show":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		location, err := a.locations.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(location)

	case "create":
		fs := flag.NewFlagSet("locations create", flag.ExitOnError)
		var req domain.CreateLocationRequest
		fs.StringVar(&req.LocationName, "name", "", "Location name")
		fs.StringVar(&req.Address, "address", "", "Street address")
		fs.StringVar(&req.City, "city", "", "City")
		fs.StringVar(&req.StateProvince, "state", "", "State or province")
		fs.StringVar(&req.PostalCode, "postal-code", "", "Postal code")
		fs.StringVar(&req.Notes, "notes", "", "Notes")
		fs.Parse(args)

		form := forms.NewForm(a.validator, req)
		return form.Submit(ctx, func(ctx context.Context, payload domain.CreateLocationRequest) error {
			created, err := mutation.Run(ctx, a.runner, mutation.CreateLocationOp(),
				func(ctx context.Context) (*domain.Location, error) {
					return a.locations.Create(ctx, payload)
				})
			if err != nil {
				return err
			}
			return printJSON(created)
		})

	case "deactivate":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		_, err = mutation.Run(ctx, a.runner, mutation.DeleteLocationOp(id),
			func(ctx context.Context) (*domain.Confirmation, error) {
				return a.locations.Delete(ctx, id)
			})
		return err
	}

	return fmt.Errorf("unknown locations command %q", command)
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	var id int
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func printJSON(value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
