package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-courses-api/models"
)

func (a *App) coursesCommand() *cobra.Command {
	coursesCmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse and manage courses",
	}

	coursesCmd.AddCommand(
		a.listCoursesCommand(),
		a.getCourseCommand(),
		a.createCourseCommand(),
		a.updateCourseCommand(),
		a.deleteCourseCommand(),
	)
	return coursesCmd
}

func (a *App) listCoursesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			courses, err := a.adapter.ListCourses(ctx)
			if err != nil {
				return err
			}

			renderCourses(a.out, courses)
			return nil
		},
	}
}

func (a *App) getCourseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseCourseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			course, err := a.adapter.GetCourse(ctx, courseID)
			if err != nil {
				return err
			}

			renderCourse(a.out, course)
			return nil
		},
	}
}

func (a *App) createCourseCommand() *cobra.Command {
	var request models.CourseRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a course owned by the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			courseID, err := a.adapter.CreateCourse(ctx, request)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Course %d created.\n", courseID)
			return nil
		},
	}
	bindCourseFlags(cmd, &request)
	return cmd
}

func (a *App) updateCourseCommand() *cobra.Command {
	var request models.CourseRequest
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace the attributes of a course you own",
		Long: "Replace the title, description, estimated time and materials of a course you own.\n" +
			"Attributes not given as flags are cleared.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseCourseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err = a.adapter.UpdateCourse(ctx, courseID, request); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Course %d updated.\n", courseID)
			return nil
		},
	}
	bindCourseFlags(cmd, &request)
	return cmd
}

func (a *App) deleteCourseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a course you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseCourseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err = a.adapter.DeleteCourse(ctx, courseID); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Course %d deleted.\n", courseID)
			return nil
		},
	}
}

func bindCourseFlags(cmd *cobra.Command, request *models.CourseRequest) {
	bindStringFlag(cmd, &request.Title, "title", "title of the course")
	bindStringFlag(cmd, &request.Description, "description", "description of the course")
	bindStringFlag(cmd, &request.EstimatedTime, "estimated-time", "estimated time, e.g. \"12 hours\"")
	bindStringFlag(cmd, &request.MaterialsNeeded, "materials-needed", "materials needed for the course")
}

func parseCourseID(raw string) (int64, error) {
	courseID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || courseID <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidCourseID, raw)
	}
	return courseID, nil
}
