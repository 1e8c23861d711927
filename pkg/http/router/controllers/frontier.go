package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	helper "github.com/lintang-b-s/binknap/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/binknap/pkg/http/usecases"
	"github.com/lintang-b-s/binknap/pkg/resultio"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 32 << 20

type frontierAPI struct {
	frontierService FrontierService
	log             *zap.Logger
}

func New(frontierService FrontierService, log *zap.Logger) *frontierAPI {
	return &frontierAPI{
		frontierService: frontierService,
		log:             log,
	}
}

func (api *frontierAPI) Routes(group *helper.RouteGroup) {
	group.POST("/frontier", api.frontier)
}

// frontier
//
//	@Summary		Efficient frontier
//	@Description	Enumerates the efficient frontier of a binary-weight knapsack instance.
//	@Tags			frontier
//	@Accept			json
//	@Produce		json
//	@Param			body	body		frontierRequest	true	"instance and options"
//	@Success		200		{object}	frontierResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/frontier [post]
func (api *frontierAPI) frontier(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request frontierRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	classify, err := pkg.ParseClassifyMode(request.Classify)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	cut, err := frontier.ParseCutPolicy(request.Cut)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	items := make([]datastructure.Item, len(request.Items))
	for i, it := range request.Items {
		items[i] = datastructure.NewItem(it.Profit, it.W1, it.W2)
	}

	res, err := api.frontierService.Frontier(r.Context(), usecases.FrontierQuery{
		Items:     items,
		Classify:  classify,
		Cut:       cut,
		MaxPoints: request.MaxPoints,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newFrontierResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func newFrontierResponse(res *usecases.FrontierResult) frontierResponse {
	points := make([]pointResponse, len(res.Points))
	for i, p := range res.Points {
		points[i] = pointResponse{
			Row:       p.Row,
			Col:       p.Col,
			Profit:    p.Profit,
			Selection: resultio.Selection(p, res.NumRight, res.NumUp, res.NumDiagonal),
		}
	}
	return frontierResponse{
		NumRight:    res.NumRight,
		NumUp:       res.NumUp,
		NumDiagonal: res.NumDiagonal,
		Emitted:     res.Emitted,
		Truncated:   res.Truncated,
		Points:      points,
	}
}
