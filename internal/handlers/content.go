package handlers

import (
	"net/http"
	"strconv"

	"github.com/aayushivora31/techblog/internal/forms"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowAddTutorial(c *gin.Context) {
	c.HTML(http.StatusOK, "add_tutorial.html", gin.H{"Input": forms.TutorialInput{}})
}

func (h *Handler) HandleAddTutorial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	in := forms.TutorialInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Content:     c.PostForm("content"),
	}

	if errs := in.Validate(); !errs.Valid() {
		c.HTML(http.StatusBadRequest, "add_tutorial.html", gin.H{
			"Errors": errs,
			"Input":  in,
		})
		return
	}

	// The image is optional, an absent file field is not an error.
	image := ""
	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.mediaStore.SaveUpload(fh)
		if err != nil {
			h.logger.Error("Failed to store upload", "error", err)
			c.HTML(http.StatusInternalServerError, "add_tutorial.html", gin.H{
				"Error": "Failed to store the uploaded image.",
				"Input": in,
			})
			return
		}
		image = stored
	}

	if _, err := h.tutorialService.Create(in, image, userID, c.ClientIP()); err != nil {
		h.logger.Error("Failed to create tutorial", "error", err)
		c.HTML(http.StatusInternalServerError, "add_tutorial.html", gin.H{
			"Error": "Failed to create tutorial.",
			"Input": in,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) ShowEditTutorial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}

	tutorial, err := h.tutorialService.GetForAuthor(uint(id), userID)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}

	c.HTML(http.StatusOK, "edit_tutorial.html", gin.H{
		"Tutorial": tutorial,
		"Input": forms.TutorialInput{
			Title:       tutorial.Title,
			Description: tutorial.Description,
			Content:     tutorial.Content,
		},
	})
}

func (h *Handler) HandleEditTutorial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}

	if _, err := h.tutorialService.GetForAuthor(uint(id), userID); err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}

	in := forms.TutorialInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Content:     c.PostForm("content"),
	}

	if errs := in.Validate(); !errs.Valid() {
		c.HTML(http.StatusBadRequest, "edit_tutorial.html", gin.H{
			"Errors": errs,
			"Input":  in,
		})
		return
	}

	image := ""
	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.mediaStore.SaveUpload(fh)
		if err != nil {
			h.logger.Error("Failed to store upload", "error", err)
			c.HTML(http.StatusInternalServerError, "edit_tutorial.html", gin.H{
				"Error": "Failed to store the uploaded image.",
				"Input": in,
			})
			return
		}
		image = stored
	}

	if _, err := h.tutorialService.Update(uint(id), userID, in, image, c.ClientIP()); err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}
	h.cacheDel("tutorial:" + c.Param("id"))

	c.Redirect(http.StatusFound, "/dashboard")
}

// DeleteTutorial deletes only on a confirming POST; a bare GET redirects
// untouched so link prefetching cannot destroy records.
func (h *Handler) DeleteTutorial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}

	if err := h.tutorialService.Delete(uint(id), userID, c.ClientIP()); err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}
	h.cacheDel("tutorial:" + c.Param("id"))

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) ShowAddArticle(c *gin.Context) {
	c.HTML(http.StatusOK, "add_article.html", gin.H{"Input": forms.ArticleInput{}})
}

func (h *Handler) HandleAddArticle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	in := forms.ArticleInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Tags:    c.PostForm("tags"),
	}

	if errs := in.Validate(); !errs.Valid() {
		c.HTML(http.StatusBadRequest, "add_article.html", gin.H{
			"Errors": errs,
			"Input":  in,
		})
		return
	}

	if _, err := h.articleService.Create(in, userID, c.ClientIP()); err != nil {
		h.logger.Error("Failed to create article", "error", err)
		c.HTML(http.StatusInternalServerError, "add_article.html", gin.H{
			"Error": "Failed to create article.",
			"Input": in,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) ShowEditArticle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}

	article, err := h.articleService.GetForAuthor(uint(id), userID)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}

	c.HTML(http.StatusOK, "edit_article.html", gin.H{
		"Article": article,
		"Input": forms.ArticleInput{
			Title:   article.Title,
			Content: article.Content,
			Tags:    article.Tags,
		},
	})
}

func (h *Handler) HandleEditArticle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}

	in := forms.ArticleInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Tags:    c.PostForm("tags"),
	}

	if errs := in.Validate(); !errs.Valid() {
		c.HTML(http.StatusBadRequest, "edit_article.html", gin.H{
			"Errors": errs,
			"Input":  in,
		})
		return
	}

	if _, err := h.articleService.Update(uint(id), userID, in, c.ClientIP()); err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}
	h.cacheDel("article:" + c.Param("id"))

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}

	if err := h.articleService.Delete(uint(id), userID, c.ClientIP()); err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}
	h.cacheDel("article:" + c.Param("id"))

	c.Redirect(http.StatusFound, "/dashboard")
}
