package handler

type listEventsQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=LIVE_MUSIC STANDUP_COMEDY CLASSICAL_MUSIC THEATRE ART_GALLERY LITERATURE RESTAURANT_EVENT"`
	Status   string `query:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
	Date     string `query:"date"`
	VenueID  string `query:"venueId" validate:"omitempty,max=64"`
	Search   string `query:"search" validate:"omitempty,max=200"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type createEventRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required,min=1,max=10000"`
	StartTime   string   `json:"startTime" validate:"required,iso8601"`
	EndTime     string   `json:"endTime" validate:"required,iso8601"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Category    string   `json:"category" validate:"required,oneof=LIVE_MUSIC STANDUP_COMEDY CLASSICAL_MUSIC THEATRE ART_GALLERY LITERATURE RESTAURANT_EVENT"`
	VenueID     string   `json:"venueId" validate:"required,max=64"`
	Status      string   `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
}

type updateEventRequest struct {
	Title       *string  `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string  `json:"description" validate:"omitnil,min=1,max=10000"`
	StartTime   *string  `json:"startTime" validate:"omitnil,iso8601"`
	EndTime     *string  `json:"endTime" validate:"omitnil,iso8601"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Category    *string  `json:"category" validate:"omitnil,oneof=LIVE_MUSIC STANDUP_COMEDY CLASSICAL_MUSIC THEATRE ART_GALLERY LITERATURE RESTAURANT_EVENT"`
	Status      *string  `json:"status" validate:"omitnil,oneof=DRAFT PUBLISHED CANCELLED"`
}
