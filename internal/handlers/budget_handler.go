package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinica-api/internal/dto"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/httpresp"
	ucBudget "github.com/BruksfildServices01/clinica-api/internal/usecase/budget"
)

// ======================================================
// HANDLER
// ======================================================

type BudgetHandler struct {
	create       *ucBudget.CreateBudget
	list         *ucBudget.ListBudgets
	descriptions *ucBudget.ListDescriptions
	update       *ucBudget.UpdateBudget
	delete       *ucBudget.DeleteBudget
	items        *ucBudget.Items
	payments     *ucBudget.Payments
}

func NewBudgetHandler(
	create *ucBudget.CreateBudget,
	list *ucBudget.ListBudgets,
	descriptions *ucBudget.ListDescriptions,
	update *ucBudget.UpdateBudget,
	del *ucBudget.DeleteBudget,
	items *ucBudget.Items,
	payments *ucBudget.Payments,
) *BudgetHandler {
	return &BudgetHandler{
		create:       create,
		list:         list,
		descriptions: descriptions,
		update:       update,
		delete:       del,
		items:        items,
		payments:     payments,
	}
}

func toItemInput(req dto.BudgetItemRequest) ucBudget.ItemInput {
	return ucBudget.ItemInput{Date: req.DataItem, Price: req.Preco, Description: req.Descricao}
}

func toPaymentInput(req dto.PaymentRequest) ucBudget.PaymentInput {
	return ucBudget.PaymentInput{Date: req.DataPagamento, Amount: req.ValorParcela, Method: req.MeioPagamento}
}

// ======================================================
// ORÇAMENTOS
// ======================================================

func (h *BudgetHandler) List(c *gin.Context) {
	views, err := h.list.Execute(c.Request.Context(), cpfParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.BudgetDTO, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ToBudgetDTO(v.Budget, v.Total, v.Paid))
	}
	httpresp.OK(c, out)
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]ucBudget.ItemInput, 0, len(req.Itens))
	for _, it := range req.Itens {
		items = append(items, toItemInput(it))
	}

	view, err := h.create.Execute(c.Request.Context(), ucBudget.CreateBudgetInput{
		CPF:   cpfParam(c),
		Date:  req.DataOrcamento,
		Items: items,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.ToBudgetDTO(view.Budget, view.Total, view.Paid))
}

func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "budgetId")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.update.Execute(c.Request.Context(), cpfParam(c), id, req.DataOrcamento); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Orçamento atualizado com sucesso!")
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "budgetId")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), cpfParam(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Orçamento excluído com sucesso!")
}

// Descriptions alimenta o autocomplete de descrição de item.
func (h *BudgetHandler) Descriptions(c *gin.Context) {
	descs, err := h.descriptions.Execute(c.Request.Context(), cpfParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if descs == nil {
		descs = []string{}
	}
	httpresp.OK(c, descs)
}

// ======================================================
// ITENS
// ======================================================

func (h *BudgetHandler) AddItem(c *gin.Context) {
	budgetID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req dto.BudgetItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.items.Add(c.Request.Context(), budgetID, toItemInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.ToBudgetItemDTO(*item))
}

func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	budgetID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}

	var req dto.BudgetItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.items.Update(c.Request.Context(), budgetID, itemID, toItemInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToBudgetItemDTO(*item))
}

func (h *BudgetHandler) DeleteItem(c *gin.Context) {
	budgetID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), budgetID, itemID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Item excluído com sucesso!")
}

// ======================================================
// PAGAMENTOS
// ======================================================

func (h *BudgetHandler) AddPayment(c *gin.Context) {
	budgetID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.payments.Add(c.Request.Context(), budgetID, toPaymentInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.ToPaymentDTO(*p))
}

func (h *BudgetHandler) UpdatePayment(c *gin.Context) {
	budgetID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	paymentID, ok := uintParam(c, "paymentId")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.payments.Update(c.Request.Context(), budgetID, paymentID, toPaymentInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToPaymentDTO(*p))
}

func (h *BudgetHandler) DeletePayment(c *gin.Context) {
	budgetID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	paymentID, ok := uintParam(c, "paymentId")
	if !ok {
		return
	}

	if err := h.payments.Delete(c.Request.Context(), budgetID, paymentID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Pagamento excluído com sucesso!")
}
