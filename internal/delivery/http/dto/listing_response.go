package dto

import "wynngrid/internal/repository"

type ProUserResponse struct {
	UserResponse
	Profile  *ProfileResponse  `json:"profile"`
	Projects []ProjectResponse `json:"projects"`
}

func FromProUserRows(rows []repository.ProUserRow) []ProUserResponse {
	out := make([]ProUserResponse, 0, len(rows))
	for _, row := range rows {
		r := ProUserResponse{
			UserResponse: FromUser(row.User),
			Projects:     FromProjects(row.Projects),
		}
		if row.Profile != nil {
			p := FromProfile(*row.Profile)
			r.Profile = &p
		}
		out = append(out, r)
	}
	return out
}
