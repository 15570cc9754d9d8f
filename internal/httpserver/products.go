package httpserver

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"agrimart/internal/domain"
	"agrimart/internal/price"
	"agrimart/internal/service/catalog"
)

type productResponse struct {
	domain.Product
	DisplayPrice string `json:"displayPrice"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		Product:      p,
		DisplayPrice: price.FormatPKR(price.Parse(p.Price)),
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		h.logger.Printf("list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

func (h *handlers) getProduct(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	p, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Printf("get product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*p))
}

// createProduct accepts the multipart form the product listing page submits:
// text fields plus an optional image file. The upload itself is not kept;
// its name becomes the image URL under the configured file host.
func (h *handlers) createProduct(c *gin.Context) {
	in := catalog.CreateInput{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		Price:    c.PostForm("price"),
	}
	if v := c.PostForm("rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			in.Rating = rating
		}
	}
	if v := c.PostForm("reviewCount"); v != "" {
		if count, err := strconv.Atoi(v); err == nil {
			in.ReviewCount = count
		}
	}
	if v := c.PostForm("inStock"); v != "" {
		if inStock, err := strconv.ParseBool(v); err == nil {
			in.InStock = &inStock
		}
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = h.imageURL(file.Filename)
	}

	p, err := h.catalog.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*p))
}

// updateProduct is a multipart PATCH: only fields present in the form change.
func (h *handlers) updateProduct(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var in catalog.UpdateInput
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		in.Category = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		in.Price = &v
	}
	if v, ok := c.GetPostForm("rating"); ok {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			in.Rating = &rating
		}
	}
	if v, ok := c.GetPostForm("reviewCount"); ok {
		if count, err := strconv.Atoi(v); err == nil {
			in.ReviewCount = &count
		}
	}
	if v, ok := c.GetPostForm("inStock"); ok {
		if inStock, err := strconv.ParseBool(v); err == nil {
			in.InStock = &inStock
		}
	}
	if file, err := c.FormFile("image"); err == nil {
		url := h.imageURL(file.Filename)
		in.Image = &url
	}

	p, err := h.catalog.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*p))
}

func (h *handlers) deleteProduct(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Printf("delete product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) imageURL(filename string) string {
	name := path.Base(filename)
	if h.fileURLHost == "" {
		return "/uploads/" + name
	}
	return h.fileURLHost + "/uploads/" + name
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
