package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	larkreport "github.com/alnah/go-larkreport"
	"github.com/alnah/go-larkreport/internal/session"
	"github.com/alnah/go-larkreport/internal/suite"
)

// Download file names.
const (
	reportFilename  = "lark_executive_report.pdf"
	reorderFilename = "supplier_reorder_list.txt"
	pdfSuffix       = ".pdf"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 16

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessions.Login(sessionID(r), r.FormValue("pin"))
	switch {
	case errors.Is(err, session.ErrPINFormat):
		writeError(w, http.StatusBadRequest, "pin_format", err.Error())
		return
	case errors.Is(err, session.ErrWrongPIN):
		writeError(w, http.StatusUnauthorized, "wrong_pin", err.Error())
		return
	case err != nil:
		s.internalError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout(sessionID(r))
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	sales, err := s.store.Sales()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suite.HomeKPIs(sales))
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.Products()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suite.ProductMargins(products))
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.Products()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suite.Menu(products))
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	ai, err := s.store.AI()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suite.Alerts(ai.Alerts))
}

type inventoryResponse struct {
	Items    []suite.StockView `json:"items"`
	Critical []suite.StockView `json:"critical"`
	Low      []suite.StockView `json:"low"`
	Reorders []suite.Reorder   `json:"reorders"`
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := s.store.Inventory()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	ai, err := s.store.AI()
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	items := suite.InventoryView(inv, ai)
	critical, low := suite.Risks(items)
	writeJSON(w, http.StatusOK, inventoryResponse{
		Items:    items,
		Critical: critical,
		Low:      low,
		Reorders: suite.ReorderList(inv.ReorderSuggestions),
	})
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	inv, err := s.store.Inventory()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	text := suite.ReorderText(suite.ReorderList(inv.ReorderSuggestions), s.cfg.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reorderFilename+`"`)
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleReportList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, suite.Sections)
}

type reportResponse struct {
	Section  suite.Section      `json:"section"`
	Snapshot suite.Snapshot     `json:"snapshot"`
	Lines    []suite.ReportLine `json:"lines"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	section, rows, ok := s.sectionRows(w, r, r.PathValue("section"))
	if !ok {
		return
	}
	sales, err := s.store.Sales()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{
		Section:  section,
		Snapshot: suite.ExecutiveSnapshot(sales),
		Lines:    suite.ReportTable(rows),
	})
}

// handleReportFile serves /reports/{section} as HTML and
// /reports/{section}.pdf as a PDF download.
func (s *Server) handleReportFile(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	key, wantPDF := strings.CutSuffix(file, pdfSuffix)

	section, rows, ok := s.sectionRows(w, r, key)
	if !ok {
		return
	}
	in, err := s.reportInput(section, rows)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	if wantPDF {
		pdf, err := s.exporter.Export(r.Context(), in)
		if err != nil {
			s.internalError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
		_, _ = w.Write(pdf)
		return
	}

	page, err := s.exporter.Preview(r.Context(), in)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// sectionRows resolves a section key, remembers it as the session's
// selected tab and loads its rows. It writes the error response itself.
func (s *Server) sectionRows(w http.ResponseWriter, r *http.Request, key string) (suite.Section, []larkreport.Row, bool) {
	reports, err := s.store.Reports()
	if err != nil {
		s.internalError(w, r, err)
		return suite.Section{}, nil, false
	}
	section, rows, err := suite.SectionRows(reports, key)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_section", err.Error())
		return suite.Section{}, nil, false
	}
	_ = s.sessions.Do(sessionID(r), func(st *session.State) error {
		st.ReportTab = section.Key
		return nil
	})
	return section, rows, true
}

func (s *Server) reportInput(section suite.Section, rows []larkreport.Row) (larkreport.Input, error) {
	date, err := larkreport.ResolveDate(s.cfg.Date, s.cfg.Now())
	if err != nil {
		return larkreport.Input{}, err
	}
	return larkreport.Input{
		Title:   s.cfg.Title,
		Section: section.Key,
		Date:    date,
		Rows:    rows,
	}, nil
}

type cartResponse struct {
	Lines []suite.Line `json:"lines"`
	Total float64      `json:"total"`
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	var resp cartResponse
	err := s.sessions.Do(sessionID(r), func(st *session.State) error {
		resp = cartResponse{Lines: st.Cart.Lines(), Total: st.Cart.Total()}
		return nil
	})
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type cartAddRequest struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if req.Qty == 0 {
		req.Qty = suite.MinQuantity
	}

	products, err := s.store.Products()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	product, err := suite.FindProduct(products, req.Item)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_product", err.Error())
		return
	}

	var resp cartResponse
	err = s.sessions.Do(sessionID(r), func(st *session.State) error {
		if err := st.Cart.Add(product.Name, req.Qty, product.Price); err != nil {
			return err
		}
		resp = cartResponse{Lines: st.Cart.Lines(), Total: st.Cart.Total()}
		return nil
	})
	if errors.Is(err, suite.ErrInvalidQuantity) {
		writeError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type chargeResponse struct {
	Receipt *suite.Receipt `json:"receipt"`
	Bill    suite.Bill     `json:"bill"`
}

func (s *Server) handleCharge(w http.ResponseWriter, r *http.Request) {
	var receipt *suite.Receipt
	err := s.sessions.Do(sessionID(r), func(st *session.State) error {
		rc, err := st.Cart.Charge()
		if err != nil {
			return err
		}
		st.LastReceipt = rc
		receipt = rc
		return nil
	})
	if errors.Is(err, suite.ErrEmptyCart) {
		writeError(w, http.StatusConflict, "empty_cart", err.Error())
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.log.Info("cart charged", zap.String("receipt", receipt.ID), zap.Float64("total", receipt.Total))
	writeJSON(w, http.StatusOK, chargeResponse{Receipt: receipt, Bill: s.cfg.Receipt.Bill(receipt.Total)})
}

func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	var receipt *suite.Receipt
	_ = s.sessions.Do(sessionID(r), func(st *session.State) error {
		receipt = st.LastReceipt
		return nil
	})
	if receipt == nil {
		writeError(w, http.StatusNotFound, "no_receipt", "no receipt yet")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(suite.FormatReceipt(s.cfg.Receipt, receipt, s.cfg.Now())))
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
