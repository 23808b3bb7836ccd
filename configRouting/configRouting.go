package configRouting

import (
	forumHandler "github.com/Natali-Skv/forum_tree/internal/forum/delivery/http"
	forumRepository "github.com/Natali-Skv/forum_tree/internal/forum/repo"
	postHandler "github.com/Natali-Skv/forum_tree/internal/post/delivery/http"
	postRepository "github.com/Natali-Skv/forum_tree/internal/post/repo"
	serviceHandler "github.com/Natali-Skv/forum_tree/internal/service/delivery/http"
	serviceRepository "github.com/Natali-Skv/forum_tree/internal/service/repo"
	"github.com/Natali-Skv/forum_tree/internal/store"
	threadHandler "github.com/Natali-Skv/forum_tree/internal/thread/delivery/http"
	threadRepository "github.com/Natali-Skv/forum_tree/internal/thread/repo"
	userHandler "github.com/Natali-Skv/forum_tree/internal/user/delivery/http"
	userRepository "github.com/Natali-Skv/forum_tree/internal/user/repo"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	routerPrefix = "/api/"
)

type Handlers struct {
	UserHandler    *userHandler.Handler
	ForumHandler   *forumHandler.Handler
	ThreadHandler  *threadHandler.Handler
	PostHandler    *postHandler.Handler
	ServiceHandler *serviceHandler.Handler
}

// NewHandlers builds every repo and handler over one store.
func NewHandlers(s store.Store, log *zap.Logger) *Handlers {
	return &Handlers{
		UserHandler:    userHandler.NewHandler(userRepository.NewRepo(s), log),
		ForumHandler:   forumHandler.NewHandler(forumRepository.NewRepo(s), log),
		ThreadHandler:  threadHandler.NewHandler(threadRepository.NewRepo(s), log),
		PostHandler:    postHandler.NewHandler(postRepository.NewRepo(s), log),
		ServiceHandler: serviceHandler.NewHandler(serviceRepository.NewRepo(s), log),
	}
}

func (hs *Handlers) ConfigureRouting(router *echo.Echo) {
	router.POST(routerPrefix+"user/:"+userHandler.NickCtxKey+"/create", hs.UserHandler.CreateUser)
	router.GET(routerPrefix+"user/:"+userHandler.NickCtxKey+"/profile", hs.UserHandler.GetUser)
	router.POST(routerPrefix+"user/:"+userHandler.NickCtxKey+"/profile", hs.UserHandler.UpdateUser)
	router.POST(routerPrefix+"forum/create", hs.ForumHandler.CreateForum)
	router.GET(routerPrefix+"forum/:"+forumHandler.SlugCtxKey+"/details", hs.ForumHandler.GetForum)
	router.GET(routerPrefix+"forum/:"+forumHandler.SlugCtxKey+"/threads", hs.ForumHandler.GetForumThreads)
	router.GET(routerPrefix+"forum/:"+forumHandler.SlugCtxKey+"/users", hs.ForumHandler.GetForumUsers)

	router.POST(routerPrefix+"forum/:"+threadHandler.SlugCtxKey+"/create", hs.ThreadHandler.CreateThread)
	router.POST(routerPrefix+"thread/:"+threadHandler.SlugCtxKey+"/vote", hs.ThreadHandler.Vote)
	router.GET(routerPrefix+"thread/:"+threadHandler.SlugCtxKey+"/details", hs.ThreadHandler.GetThread)
	router.POST(routerPrefix+"thread/:"+threadHandler.SlugCtxKey+"/details", hs.ThreadHandler.UpdateThread)

	router.POST(routerPrefix+"thread/:"+postHandler.SlugOrIdCtxKey+"/create", hs.PostHandler.CreatePost)
	router.GET(routerPrefix+"thread/:"+postHandler.SlugOrIdCtxKey+"/posts", hs.PostHandler.GetThreadPosts)
	router.GET(routerPrefix+"post/:"+postHandler.IdCtxKey+"/details", hs.PostHandler.GetPost)
	router.POST(routerPrefix+"post/:"+postHandler.IdCtxKey+"/details", hs.PostHandler.UpdatePost)

	router.GET(routerPrefix+"service/status", hs.ServiceHandler.Status)
	router.POST(routerPrefix+"service/clear", hs.ServiceHandler.ClearDB)
}
