package assign_weekly_menu

import "github.com/m04kA/SMC-CanteenService/internal/service/menu/models"

// AssignWeeklyMenuRequest HTTP request model
type AssignWeeklyMenuRequest struct {
	DishIDs    []string `json:"dishIds"`
	DrinkIDs   []string `json:"drinkIds"`
	DessertIDs []string `json:"dessertIds"`
}

// ToServiceRequest дополняет тело параметрами пути и автором
func (r *AssignWeeklyMenuRequest) ToServiceRequest(venueID, weekday, meal, userID string) *models.AssignRequest {
	return &models.AssignRequest{
		VenueID:    venueID,
		Weekday:    weekday,
		Meal:       meal,
		DishIDs:    r.DishIDs,
		DrinkIDs:   r.DrinkIDs,
		DessertIDs: r.DessertIDs,
		UpdatedBy:  userID,
	}
}
