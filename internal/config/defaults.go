package config

import "time"

const (
	defaultTrashInterval = 2 * time.Second

	minPopupWidth = 200
	maxPopupWidth = 300
)
