package cli

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/format"
	"github.com/spf13/cobra"
)

// searchSkills is how many resume skills become search keywords.
const searchSkills = 5

var experienceLevels = []string{format.LevelJunior, format.LevelMiddle, format.LevelSenior}

func (a *App) jobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search jobs and apply",
	}
	cmd.AddCommand(a.jobsSearchCmd(), a.jobsApplyCmd(), a.jobsApplicationsCmd())
	return cmd
}

// searchRequest builds a search for userID. Criteria not given explicitly
// are taken from the active resume unless prefill is off: its first skills
// plus position title as keywords, its location, and the experience level
// derived from its years of experience.
func (a *App) searchRequest(userID int64, keywords []string, location string, salaryFrom int64, level string, prefill bool) models.JobSearchRequest {
	req := models.JobSearchRequest{UserID: userID, Keywords: keywords}
	if location != "" {
		req.Location = &location
	}
	if salaryFrom > 0 {
		req.SalaryFrom = &salaryFrom
	}
	if level != "" {
		req.ExperienceLevel = &level
	}
	if !prefill {
		return req
	}

	r, ok := a.board.Active()
	if !ok {
		return req
	}
	if len(req.Keywords) == 0 {
		req.Keywords = append(req.Keywords, r.Skills[:min(len(r.Skills), searchSkills)]...)
		if title := deref(r.PositionTitle); title != "" {
			req.Keywords = append(req.Keywords, title)
		}
	}
	if req.Location == nil && deref(r.Location) != "" {
		loc := *r.Location
		req.Location = &loc
	}
	if req.ExperienceLevel == nil {
		if lvl := format.ExperienceLevel(r.ExperienceYears); lvl != "" {
			req.ExperienceLevel = &lvl
		}
	}
	return req
}

func (a *App) jobsSearchCmd() *cobra.Command {
	var (
		keywords        []string
		location, level string
		salaryFrom      int64
		noPrefill       bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search jobs matching the active resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			id, err := a.requireUser()
			if err != nil {
				return err
			}
			if level != "" && !slices.Contains(experienceLevels, level) {
				return fmt.Errorf("invalid level %q: want one of %v", level, experienceLevels)
			}
			if !noPrefill {
				if err := a.loadBoard(ctx, false); err != nil {
					return err
				}
			}

			req := a.searchRequest(id, keywords, location, salaryFrom, level, !noPrefill)
			a.log.Debug(ctx, "job search", "user_id", id, "keywords", req.Keywords)

			jobs, err := a.client.SearchJobs(ctx, req)
			if err != nil {
				return err
			}
			a.printJobs(cmd.OutOrStdout(), jobs)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "search keywords (comma separated)")
	cmd.Flags().StringVar(&location, "location", "", "city")
	cmd.Flags().Int64Var(&salaryFrom, "salary-from", 0, "minimum salary")
	cmd.Flags().StringVar(&level, "level", "", "experience level: junior, middle or senior")
	cmd.Flags().BoolVar(&noPrefill, "no-prefill", false, "do not fill criteria from the active resume")
	return cmd
}

func (a *App) jobsApplyCmd() *cobra.Command {
	var (
		resumeID    int64
		coverLetter string
	)

	cmd := &cobra.Command{
		Use:   "apply <job-id>...",
		Short: "Apply to one or more jobs with a resume",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, err := a.requireUser()
			if err != nil {
				return err
			}
			jobIDs, err := parseIDs(args, "job")
			if err != nil {
				return err
			}

			if resumeID == 0 {
				if err := a.loadBoard(ctx, false); err != nil {
					return err
				}
				r, ok := a.board.Active()
				if !ok {
					return fmt.Errorf("no resume to apply with: upload one or pass --resume")
				}
				resumeID = r.ID
			}

			req := models.ApplyRequest{JobIDs: jobIDs, ResumeID: resumeID}
			if coverLetter != "" {
				req.CustomCoverLetter = &coverLetter
			}

			resp, err := a.client.ApplyToJobs(ctx, userID, req)
			if err != nil {
				return err
			}
			a.printApplyResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&resumeID, "resume", "r", 0, "resume id (default: the active resume)")
	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "custom cover letter")
	return cmd
}

func (a *App) jobsApplicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "List submitted applications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.requireUser()
			if err != nil {
				return err
			}
			apps, err := a.client.ListApplications(cmd.Context(), id)
			if err != nil {
				return err
			}
			a.printApplications(cmd.OutOrStdout(), apps)
			return nil
		},
	}
}
