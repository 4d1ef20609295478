package web

import (
	"net/url"
	"strconv"
)

const (
	PathRoot          = "/"
	PathLogin         = "/login"
	PathLogout        = "/logout"
	PathDashboard     = "/dashboard"
	PathConfirmDelete = "/dashboard/users/{id}/delete"
	PathEdit          = "/edit/{id}"
)

func dashboardPath(page int) string {
	if page < 1 {
		return PathDashboard
	}
	return PathDashboard + "?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
}

func editPath(id int) string {
	return "/edit/" + strconv.Itoa(id)
}

func deletePath(id int) string {
	return "/dashboard/users/" + strconv.Itoa(id) + "/delete"
}
