package handlers

import (
	"net/http"

	"github.com/aayushivora31/techblog/internal/forms"
	"github.com/aayushivora31/techblog/internal/models"
	"github.com/aayushivora31/techblog/pkg/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Same message for unknown username and wrong password, so login
// failures never reveal whether an account exists.
const invalidCredentials = "Invalid username or password."

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Username": "", "Email": ""})
}

func (h *Handler) HandleLoginForm(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user models.User
	result := h.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": invalidCredentials})
		return
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": invalidCredentials})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Failed to save session"})
		return
	}

	h.auditService.LogAction(&user.ID, "LOGIN", user.Username, nil, c.ClientIP())

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) HandleSignupForm(c *gin.Context) {
	in := forms.SignupInput{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if errs := in.Validate(); !errs.Valid() {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Errors":   errs,
			"Username": in.Username,
			"Email":    in.Email,
		})
		return
	}

	var existingUser models.User
	if err := h.db.Where("username = ?", in.Username).First(&existingUser).Error; err == nil {
		c.HTML(http.StatusConflict, "signup.html", gin.H{
			"Errors":   forms.FieldErrors{"username": "Username already exists."},
			"Username": in.Username,
			"Email":    in.Email,
		})
		return
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"Error":    "Failed to hash password",
			"Username": in.Username,
			"Email":    in.Email,
		})
		return
	}

	newUser := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashedPassword,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"Error":    "Failed to create user",
			"Username": in.Username,
			"Email":    in.Email,
		})
		return
	}

	// Auto-login after signup
	session := sessions.Default(c)
	session.Set("user_id", newUser.ID)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"Error":    "Failed to save session",
			"Username": in.Username,
			"Email":    in.Email,
		})
		return
	}

	h.auditService.LogAction(&newUser.ID, "SIGNUP", newUser.Username, nil, c.ClientIP())

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) LogoutUser(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		h.logger.Error("Failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
