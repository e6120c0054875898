package controller

import (
	"errors"
	"net/http"
	"gigflow/internal/entity"
	"gigflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService  service.Bid
	hireService service.Hire
	validate    *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, protect echo.MiddlewareFunc) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, hireService: services.Hire, validate: v}
	outer.POST("/bids", h.PostBid, protect)
	outer.GET("/bids/:gigId", h.GetGigBids, protect)
	outer.PATCH("/bids/:bidId/hire", h.HireBid, protect)

	return h
}

type postBidInput struct {
	GigId   string  `json:"gigId" validate:"required,uuid"`
	Message string  `json:"message" validate:"required,min=10,max=1000"`
	Price   float64 `json:"price" validate:"required,gte=1,lte=1000000"`
}

// /bids
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidInput{
		GigId:        input.GigId,
		FreelancerId: requesterId(c),
		Message:      input.Message,
		Price:        input.Price,
	}

	bid, err := h.bidService.CreateBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, bid); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrGigNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrGigNotOpen):
		if e := c.JSON(http.StatusBadRequest, errorResponse{"This gig is no longer accepting bids"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrOwnBidForbidden):
		if e := c.JSON(http.StatusForbidden, errorResponse{"You cannot bid on your own gig"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrBidAlreadyExists):
		if e := c.JSON(http.StatusConflict, errorResponse{"You have already submitted a bid for this gig"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getGigBidsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /bids/:gigId
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	var input = getGigBidsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetGigBids(c.Request().Context(), c.Param("gigId"), requesterId(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bids); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrGigNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrNotGigOwner):
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the gig owner can view bids"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /bids/:bidId/hire
func (h *bidRoutesHandler) HireBid(c echo.Context) error {
	result, err := h.hireService.Hire(c.Request().Context(), c.Param("bidId"), requesterId(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, result); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrBidNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrNotGigOwner):
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the gig owner can hire for this gig"}); e != nil {
			return e
		}
	case errors.Is(err, service.ErrGigAlreadyAssigned):
		if e := c.JSON(http.StatusConflict, errorResponse{"This gig has already been assigned"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
