package service

import "colorado-lottery/internal/features/lottery/models"

const (
	DefaultHomeState  = models.HomeState
	DefaultMinimumAge = 18
	DefaultDrawDate   = "06/09/2020"

	announcementFormat = "%s won the %s on %s"
)
