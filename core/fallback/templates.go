package fallback

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="{{.Default}}"><head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <meta http-equiv="refresh" content="0; url={{.Landing}}">
  <script>location.replace({{.Landing}});</script>
</head><body>
  <a href="{{.Landing}}">{{.Landing}}</a>
</body></html>
`))

// The 404 page strips every leading locale segment, keeps the last one and
// reattaches the rest of the path, query and hash.
var notFoundTemplate = template.Must(template.New("404").Parse(`<!doctype html>
<html lang="{{.Default}}"><head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script>
(function () {
  var base = {{.Base}};
  var supported = {{.Supported}};
  var fallback = {{.Default}};
  var p = location.pathname || "/";
  if (base && p !== base && p.indexOf(base + "/") !== 0) {
    location.replace(base + "/" + fallback + "/");
    return;
  }
  var segs = p.slice(base.length).split("/").filter(Boolean);
  var i = 0, last = null;
  while (i < segs.length && supported.indexOf(segs[i].toLowerCase()) !== -1) {
    last = segs[i].toLowerCase();
    i++;
  }
  var rest = segs.slice(i).join("/");
  var target = base + "/" + (last || fallback) + "/" + (rest ? rest : "");
  location.replace(target + location.search + location.hash);
})();
</script>
</head><body></body></html>
`))
