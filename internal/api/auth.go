package api

import (
	"errors"   // Error comparison
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"kasir/internal/domain"     // Importing domain models
	"kasir/internal/middleware" // Session cookie helpers
	"kasir/internal/utils"      // Password hashing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterForm is posted by the registration page
type RegisterForm struct {
	StoreName string `form:"nama_toko"` // Store name
	StoreCode string `form:"kode_toko"` // Unique store code
	Address   string `form:"alamat"`    // Store address, optional
	UserName  string `form:"nama_user"` // Display name of the first user
	Username  string `form:"username"`  // Login name
	Password  string `form:"password"`  // Plain password
}

// LoginForm is posted by the login page
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

var (
	usernamePattern  = regexp.MustCompile(`^[a-z0-9_.]{3,50}$`)
	storeCodePattern = regexp.MustCompile(`^[a-z0-9-]{2,50}$`)
)

// isValidUsername checks the lower-cased username
func isValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// isValidStoreCode checks the lower-cased store code
func isValidStoreCode(code string) bool {
	return storeCodePattern.MatchString(code)
}

// isValidPassword checks the password length
func isValidPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 72 // bcrypt ignores anything past 72 bytes
}

// LoginPageHandler shows the login form, or the POS page when already logged in
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// LoginHandler authenticates a user and starts a session
func LoginHandler(users UserStore, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form LoginForm // Bind form to struct
		_ = c.ShouldBind(&form)
		username := strings.ToLower(strings.TrimSpace(form.Username))
		password := strings.TrimSpace(form.Password)

		ctx := c.Request.Context()
		user, err := users.UserByUsername(ctx, username) // Fetch user from database
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Login lookup failed")
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Terjadi kesalahan, coba lagi"})
			return
		}
		// Compare provided password with stored hash
		ok := false
		if user != nil {
			ok, err = utils.CheckPassword(user.PasswordHash, password)
			if err != nil {
				logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Warn("Password hash not verifiable")
			}
		}
		if !ok {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Username atau password salah"})
			return
		}
		// Upgrade hashes carried over from the previous deployment
		if utils.NeedsRehash(user.PasswordHash) {
			if hash, err := utils.HashPassword(password); err == nil {
				if err := users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
					logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Warn("Password rehash failed")
				}
			}
		}
		if err := middleware.SetSessionCookie(c, user.ID, secret, secure); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Error("Session token failed")
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Terjadi kesalahan, coba lagi"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "toko_id": user.StoreID}).Info("User logged in")
		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler ends the session
func LogoutHandler(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.ClearSessionCookie(c, secure)
		c.Redirect(http.StatusFound, "/login")
	}
}

// RegisterPageHandler shows the registration form
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

// RegisterHandler creates a store with its admin user and logs that user in
func RegisterHandler(users UserStore, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form RegisterForm // Bind form to struct
		_ = c.ShouldBind(&form)
		store := domain.Store{
			Name:    strings.TrimSpace(form.StoreName),
			Code:    strings.ToLower(strings.TrimSpace(form.StoreCode)),
			Address: strings.TrimSpace(form.Address),
		}
		username := strings.ToLower(strings.TrimSpace(form.Username))
		password := strings.TrimSpace(form.Password)
		name := strings.TrimSpace(form.UserName)

		// Validate required fields
		if store.Name == "" || store.Code == "" || name == "" || username == "" || password == "" {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": "Semua field wajib diisi"})
			return
		}
		if !isValidStoreCode(store.Code) {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": "Kode toko hanya boleh huruf, angka dan tanda -"})
			return
		}
		if !isValidUsername(username) {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": "Username 3-50 karakter: huruf, angka, titik atau garis bawah"})
			return
		}
		if !isValidPassword(password) {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": "Password minimal 6 karakter"})
			return
		}
		// Hash the password and create the store with its admin
		hash, err := utils.HashPassword(password)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to hash password")
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"error": "Gagal register"})
			return
		}
		user := domain.User{Name: name, Username: username, PasswordHash: hash, Role: domain.RoleAdmin}
		if err := users.RegisterStore(c.Request.Context(), &store, &user); err != nil {
			if errors.Is(err, domain.ErrDuplicateStore) {
				c.HTML(http.StatusConflict, "register.html", gin.H{"error": "Kode toko atau username sudah dipakai"})
				return
			}
			logrus.WithFields(logrus.Fields{"kode_toko": store.Code, "username": username, "error": err.Error()}).Error("Register failed")
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"error": "Gagal register"})
			return
		}
		logrus.WithFields(logrus.Fields{"toko_id": store.ID, "user_id": user.ID, "kode_toko": store.Code}).Info("Store registered")

		// Auto login after register
		if err := middleware.SetSessionCookie(c, user.ID, secret, secure); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Error("Session token failed")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}
