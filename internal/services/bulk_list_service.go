package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"resale/internal/bulklist"
	"resale/internal/domain"
	"resale/internal/domain/models"
	"resale/internal/marketplace"
	"resale/internal/utils"
)

const invalidListsMessage = "Please ensure that your lists are valid."

// Seller identifies the authenticated caller and carries the token forwarded upstream.
type Seller struct {
	UserID int64
	Token  string
}

type ListGateway interface {
	CurrentLists(ctx context.Context, token string, ids []int64) ([]models.OfferList, error)
	EditLists(ctx context.Context, token string, req marketplace.EditListsRequest) error
}

type BulkEditStore interface {
	Create(ctx context.Context, edit models.BulkEdit, items []models.BulkEditItem) (int64, error)
	GetByID(ctx context.Context, userID, id int64) (models.BulkEdit, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.BulkEdit, error)
}

// BulkListService previews and applies one price edit across a seller's selected lists.
type BulkListService struct {
	Lists      ListGateway
	Edits      BulkEditStore
	Calculator bulklist.Calculator
	RequestID  string
}

type BulkListRequest struct {
	ListIDs    []int64 `json:"list_ids" binding:"required,min=1,max=100,dive,gt=0"`
	EditOption string  `json:"edit_option" binding:"required"`
	EditValue  float64 `json:"edit_value" binding:"gte=0"`
	Expiration int     `json:"expiration" binding:"gte=0"`
}

// InvalidList is a list whose new price would fall below its currency minimum.
type InvalidList struct {
	ID           int64   `json:"id"`
	Size         string  `json:"size"`
	ProductID    int64   `json:"product_id"`
	NewPrice     float64 `json:"new_price"`
	MinListPrice float64 `json:"min_list_price"`
	Currency     string  `json:"currency"`
}

type BulkListPreview struct {
	EditOption string                 `json:"edit_option"`
	EditValue  float64                `json:"edit_value"`
	Expiration int                    `json:"expiration"`
	Lists      []bulklist.UpdatedList `json:"lists"`
	Invalid    []InvalidList          `json:"invalid"`
	Valid      bool                   `json:"valid"`
}

type BulkListResult struct {
	EditID int64                  `json:"edit_id,omitempty"`
	Lists  []bulklist.UpdatedList `json:"lists"`
}

// Preview computes the new prices without changing anything upstream.
func (s BulkListService) Preview(ctx context.Context, seller Seller, req BulkListRequest) (BulkListPreview, error) {
	edit, lists, err := s.load(ctx, seller, req)
	if err != nil {
		return BulkListPreview{}, err
	}
	calc := s.calculator()
	invalid := s.invalid(lists, edit)

	utils.LogEvent(s.RequestID, "bulk_list", "preview",
		fmt.Sprintf("user_id=%d lists=%d option=%s invalid=%d", seller.UserID, len(lists), edit.Option(), len(invalid)))

	return BulkListPreview{
		EditOption: string(edit.Option()),
		EditValue:  edit.Amount(),
		Expiration: req.Expiration,
		Lists:      calc.UpdatedLists(lists, edit),
		Invalid:    invalid,
		Valid:      len(invalid) == 0,
	}, nil
}

// Confirm applies the edit. A batch with any invalid member is rejected whole.
// The audit record is best effort once the marketplace has accepted the edit.
func (s BulkListService) Confirm(ctx context.Context, seller Seller, req BulkListRequest) (BulkListResult, error) {
	edit, lists, err := s.load(ctx, seller, req)
	if err != nil {
		return BulkListResult{}, err
	}
	calc := s.calculator()
	if calc.HasInvalidLists(lists, edit) {
		utils.LogEvent(s.RequestID, "bulk_list", "confirm_rejected", fmt.Sprintf("user_id=%d", seller.UserID))
		return BulkListResult{}, domain.ValidationError{Field: "lists", Msg: invalidListsMessage}
	}

	updated := calc.UpdatedLists(lists, edit)
	if err := s.Lists.EditLists(ctx, seller.Token, marketplace.EditListsRequest{
		Lists:      toEditedLists(updated),
		Expiration: req.Expiration,
	}); err != nil {
		return BulkListResult{}, err
	}

	result := BulkListResult{Lists: updated}
	if s.Edits != nil {
		id, err := s.Edits.Create(ctx, models.BulkEdit{
			UserID:       seller.UserID,
			EditOption:   string(edit.Option()),
			EditValue:    edit.Amount(),
			Expiration:   req.Expiration,
			CurrencyCode: lists[0].Currency.Code,
			RequestID:    s.RequestID,
		}, toEditItems(updated))
		if err != nil {
			utils.LogEvent(s.RequestID, "bulk_list", "audit_failed", err.Error())
		} else {
			result.EditID = id
		}
	}

	utils.LogEvent(s.RequestID, "bulk_list", "confirm",
		fmt.Sprintf("user_id=%d lists=%d option=%s edit_id=%d", seller.UserID, len(updated), edit.Option(), result.EditID))
	return result, nil
}

// History lists the seller's confirmed edits, newest first.
func (s BulkListService) History(ctx context.Context, seller Seller, limit int) ([]models.BulkEdit, error) {
	if s.Edits == nil {
		return []models.BulkEdit{}, nil
	}
	return s.Edits.ListByUser(ctx, seller.UserID, limit)
}

func (s BulkListService) load(ctx context.Context, seller Seller, req BulkListRequest) (bulklist.Edit, []models.OfferList, error) {
	if len(req.ListIDs) == 0 {
		return nil, nil, domain.ValidationError{Field: "list_ids", Msg: "select at least one list"}
	}
	if math.IsNaN(req.EditValue) || math.IsInf(req.EditValue, 0) {
		return nil, nil, domain.ValidationError{Field: "edit_value", Msg: "must be a number"}
	}
	if req.Expiration < 0 {
		return nil, nil, domain.ValidationError{Field: "expiration", Msg: "must not be negative"}
	}
	edit, err := bulklist.ParseEdit(req.EditOption, req.EditValue)
	if err != nil {
		return nil, nil, err
	}

	ids := uniqueIDs(req.ListIDs)
	if len(ids) > marketplace.MaxLists {
		return nil, nil, domain.ValidationError{
			Field: "list_ids",
			Msg:   fmt.Sprintf("select at most %d lists", marketplace.MaxLists),
		}
	}

	lists, err := s.Lists.CurrentLists(ctx, seller.Token, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(lists) == 0 {
		return nil, nil, domain.NotFoundError{Resource: "offer lists"}
	}
	lists, missing := matchLists(ids, lists)
	if len(missing) > 0 {
		return nil, nil, domain.ValidationError{
			Field: "list_ids",
			Msg:   "lists no longer available: " + joinIDs(missing),
		}
	}
	return edit, lists, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// matchLists keeps the lists in request order and reports requested ids that did not come back.
func matchLists(ids []int64, lists []models.OfferList) ([]models.OfferList, []int64) {
	byID := make(map[int64]models.OfferList, len(lists))
	for _, l := range lists {
		byID[l.ID] = l
	}
	out := make([]models.OfferList, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		l, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		out = append(out, l)
	}
	return out, missing
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (s BulkListService) calculator() bulklist.Calculator {
	if s.Calculator.ToList == nil {
		return bulklist.NewCalculator()
	}
	return s.Calculator
}

func (s BulkListService) invalid(lists []models.OfferList, edit bulklist.Edit) []InvalidList {
	calc := s.calculator()
	out := []InvalidList{}
	for _, l := range calc.InvalidLists(lists, edit) {
		productID := l.Product.ID
		if productID == 0 {
			productID = l.ProductID
		}
		out = append(out, InvalidList{
			ID:           l.ID,
			Size:         l.Size,
			ProductID:    productID,
			NewPrice:     calc.NewListPrice(l, edit),
			MinListPrice: l.Currency.MinListPrice,
			Currency:     l.Currency.Code,
		})
	}
	return out
}

func toEditedLists(updated []bulklist.UpdatedList) []marketplace.EditedList {
	out := make([]marketplace.EditedList, 0, len(updated))
	for _, u := range updated {
		out = append(out, marketplace.EditedList{
			ID:        u.ID,
			Size:      u.Size,
			ProductID: u.ProductID,
			NewPrice:  u.NewPrice,
			OldPrice:  u.OldPrice,
		})
	}
	return out
}

func toEditItems(updated []bulklist.UpdatedList) []models.BulkEditItem {
	out := make([]models.BulkEditItem, 0, len(updated))
	for _, u := range updated {
		out = append(out, models.BulkEditItem{
			OfferListID: u.ID,
			ProductID:   u.ProductID,
			Size:        u.Size,
			OldPrice:    u.OldPrice,
			NewPrice:    u.NewPrice,
		})
	}
	return out
}
