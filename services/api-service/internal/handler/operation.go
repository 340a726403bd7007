package handler

import "net/http"

// Operation identifies one API operation. Every Operation has exactly one
// route and one bound handler.
type Operation int

const (
	OpListTodos Operation = iota
	OpListProducts
	OpGetProduct
	OpListCategories
	OpSeries
	OpSearchSeries
	OpSuggestions
	OpFeatured
	OpListGenres
	OpListEpisodes
	OpGetEpisode
	OpListHistory
	OpListFavorites
	OpUserByEmail
	OpMe

	OpAddTodo
	OpToggleTodo
	OpRegister
	OpLogin
	OpGoogleAuth
	OpGoogleLogin
	OpUpdateProfile
	OpChangePassword
	OpUpdateAvatar
	OpForgotPassword
	OpResetPassword
	OpUploadImage
	OpCreateVideo
	OpSaveSeries
	OpSaveEpisode
	OpSaveGenre
	OpSaveProduct
	OpSaveCategory
	OpAddHistory
	OpAddFavorite
	OpSeed

	OpDeleteTodo
	OpDeleteImage
	OpDeleteVideo
	OpDeleteSeries
	OpDeleteEpisode
	OpDeleteGenre
	OpDeleteProduct
	OpDeleteHistory
	OpDeleteFavorite

	operationCount
)

const (
	methodGet    = "get"
	methodPost   = "post"
	methodDelete = "delete"
)

type route struct {
	method string
	name   string
}

var routes = map[route]Operation{
	{methodGet, "todos"}:        OpListTodos,
	{methodGet, "products"}:     OpListProducts,
	{methodGet, "product"}:      OpGetProduct,
	{methodGet, "categories"}:   OpListCategories,
	{methodGet, "series"}:       OpSeries,
	{methodGet, "searchSeries"}: OpSearchSeries,
	{methodGet, "suggestions"}:  OpSuggestions,
	{methodGet, "featured"}:     OpFeatured,
	{methodGet, "genres"}:       OpListGenres,
	{methodGet, "episodes"}:     OpListEpisodes,
	{methodGet, "episode"}:      OpGetEpisode,
	{methodGet, "history"}:      OpListHistory,
	{methodGet, "favorites"}:    OpListFavorites,
	{methodGet, "user"}:         OpUserByEmail,
	{methodGet, "me"}:           OpMe,

	{methodPost, "todo"}:           OpAddTodo,
	{methodPost, "toggleTodo"}:     OpToggleTodo,
	{methodPost, "register"}:       OpRegister,
	{methodPost, "login"}:          OpLogin,
	{methodPost, "googleAuth"}:     OpGoogleAuth,
	{methodPost, "googleLogin"}:    OpGoogleLogin,
	{methodPost, "updateProfile"}:  OpUpdateProfile,
	{methodPost, "changePassword"}: OpChangePassword,
	{methodPost, "updateAvatar"}:   OpUpdateAvatar,
	{methodPost, "forgotPassword"}: OpForgotPassword,
	{methodPost, "resetPassword"}:  OpResetPassword,
	{methodPost, "uploadImage"}:    OpUploadImage,
	{methodPost, "createVideo"}:    OpCreateVideo,
	{methodPost, "saveSeries"}:     OpSaveSeries,
	{methodPost, "saveEpisode"}:    OpSaveEpisode,
	{methodPost, "saveGenre"}:      OpSaveGenre,
	{methodPost, "saveProduct"}:    OpSaveProduct,
	{methodPost, "saveCategory"}:   OpSaveCategory,
	{methodPost, "history"}:        OpAddHistory,
	{methodPost, "favorite"}:       OpAddFavorite,
	{methodPost, "seed"}:           OpSeed,

	{methodDelete, "todo"}:     OpDeleteTodo,
	{methodDelete, "image"}:    OpDeleteImage,
	{methodDelete, "video"}:    OpDeleteVideo,
	{methodDelete, "series"}:   OpDeleteSeries,
	{methodDelete, "episode"}:  OpDeleteEpisode,
	{methodDelete, "genre"}:    OpDeleteGenre,
	{methodDelete, "product"}:  OpDeleteProduct,
	{methodDelete, "history"}:  OpDeleteHistory,
	{methodDelete, "favorite"}: OpDeleteFavorite,
}

var supportedMethods = map[string]bool{
	methodGet:    true,
	methodPost:   true,
	methodDelete: true,
}

// Operations that hash passwords or send email share a per-client budget.
var rateLimited = map[Operation]bool{
	OpRegister:       true,
	OpLogin:          true,
	OpForgotPassword: true,
	OpResetPassword:  true,
}

func (o Operation) String() string {
	for r, op := range routes {
		if op == o {
			return r.method + " " + r.name
		}
	}
	return "unknown"
}

func lookup(method, name string) (Operation, bool) {
	op, ok := routes[route{method: method, name: name}]
	return op, ok
}

// allowedMethods lists the methods browsers may use cross-origin.
func allowedMethods() []string {
	return []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
}
